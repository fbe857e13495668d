package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/devRabbiz/waveboxapp/internal/config"
	"github.com/devRabbiz/waveboxapp/internal/logging"
	"github.com/devRabbiz/waveboxapp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "wbmenu",
	Short:        "wbmenu builds and shows the Wavebox context menu for a right-click.",
	Version:      version.Version(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(config.Debug(), config.LogFile(), config.MaxLogFiles())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of the log directory")

	_ = viper.BindPFlag(config.DebugKey, rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag(config.LogFileKey, rootCmd.PersistentFlags().Lookup("log-file"))
}
