package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-params/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "paramctl",
		Short: "Tools for inspecting case-insensitive request parameters",
	}

	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(serveCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig returns the configuration named by --config or an empty one.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	return config.Load(configPath)
}
