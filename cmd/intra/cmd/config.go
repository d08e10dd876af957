package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/peer-tools/intra/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Commands for inspecting the intra configuration.`,
}

// configPathCmd prints the resolved configuration file location
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Long: `Print the resolved path of the configuration file.

Examples:
  intra config path
  intra config path --config /tmp/other.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(cfgFile)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Long: `Display the stored configuration with the client secret redacted.

Examples:
  intra config show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(cfgFile)
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg.Redacted())
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}

		fmt.Printf("# Configuration at %s\n", path)
		fmt.Print(string(data))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
