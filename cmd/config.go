package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devRabbiz/waveboxapp/internal/config"
)

// configFlags maps config command flags to config keys
var configFlags = []struct {
	flag  string
	key   string
	usage string
}{
	{"editor", config.EditorKey, "Set the editor to use for editing config"},
	{"primary", config.SpellcheckPrimaryKey, "Set the primary spellcheck language, e.g. en_US"},
	{"secondary", config.SpellcheckSecondaryKey, "Set the secondary spellcheck language"},
	{"dictionaries", config.DictionariesKey, "Set the directory holding <lang>.dic files"},
	{"locale", config.LocaleKey, "Set the language of menu labels"},
	{"locales-dir", config.LocalesDirKey, "Set the directory holding translation catalogs"},
	{"storage", config.StorageKey, "Set the directory for custom words"},
}

var configToggles = []struct {
	flag  string
	key   string
	usage string
}{
	{"copy-current-url", config.CopyCurrentPageURLKey, "Show the Copy current URL item"},
	{"open-current-page", config.OpenCurrentPageInBrowserKey, "Show the Open page in Browser item"},
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			flagsSet, err := applyConfigFlags(cmd)
			if err != nil {
				return err
			}

			if flagsSet {
				if err := viper.WriteConfig(); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				return nil
			}

			return openInEditor(config.GetConfigFilePath())
		},
	}

	for _, f := range configFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}

	for _, f := range configToggles {
		cmd.Flags().Bool(f.flag, false, f.usage)
	}

	return cmd
}

func applyConfigFlags(cmd *cobra.Command) (bool, error) {
	flagsSet := false
	out := cmd.OutOrStdout()

	for _, f := range configFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}

		value, err := cmd.Flags().GetString(f.flag)
		if err != nil {
			return false, err
		}

		viper.Set(f.key, value)
		flagsSet = true
		fmt.Fprintf(out, "%s set to: %s\n", f.key, value)
	}

	for _, f := range configToggles {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}

		value, err := cmd.Flags().GetBool(f.flag)
		if err != nil {
			return false, err
		}

		viper.Set(f.key, value)
		flagsSet = true
		fmt.Fprintf(out, "%s set to: %t\n", f.key, value)
	}

	return flagsSet, nil
}

func openInEditor(configPath string) error {
	editor := config.GetEditor()

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

func initConfig() {
	if _, err := config.InitialiseConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
	}
}
