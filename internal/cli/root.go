package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath   string
	settingsPath string
	Version      = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "gauss",
	Short:        "Validate and render Gaussian 16 job files, and run g16 on them",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "path", "p", "gauss.yaml", "path to job file")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "gauss.settings.yaml", "path to tool settings file")
}

func Execute() error {
	return rootCmd.Execute()
}
