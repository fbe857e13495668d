package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devRabbiz/waveboxapp/internal/config"
	"github.com/devRabbiz/waveboxapp/internal/version"
	"github.com/devRabbiz/waveboxapp/pkg/update"
	"github.com/devRabbiz/waveboxapp/ui/styles"
)

const updateCheckInterval = 24 * time.Hour

const logo = `
           _
 __      _| |__  _ __ ___   ___ _ __  _   _
 \ \ /\ / / '_ \| '_ ' _ \ / _ \ '_ \| | | |
  \ V  V /| |_) | | | | | |  __/ | | | |_| |
   \_/\_/ |_.__/|_| |_| |_|\___|_| |_|\__,_|
`

func versionTemplate() string {
	versionTpl := styles.Primary.Margin(0, 2).Render(logo) + `
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, version.Version(), version.Commit(), version.Date())
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, versionTemplate())

			if check, _ := cmd.Flags().GetBool("check"); !check {
				return nil
			}

			storage, err := config.GetStorage()
			if err != nil {
				return err
			}

			info, err := update.New(version.Version(), storage, updateCheckInterval).Check(cmd.Context())
			if err != nil {
				return err
			}

			if info.HasUpdate {
				fmt.Fprintf(out, "\n  %s is available: %s\n", styles.Accent.Render(info.TagName), info.ReleaseURL)
			} else {
				fmt.Fprintln(out, "\n  You are running the latest version")
			}

			return nil
		},
	}

	cmd.Flags().Bool("check", false, "Check for a newer release")

	return cmd
}
