// Package cmd contains all CLI commands for intra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peer-tools/intra/internal/app"
	"github.com/peer-tools/intra/internal/command"
	"github.com/peer-tools/intra/internal/config"
	"github.com/peer-tools/intra/internal/logger"
	"github.com/peer-tools/intra/pkg/version"
)

// defaultToken is the command run when none is given.
const defaultToken = "login"

var (
	// Global flags
	cfgFile string
	verbose bool
)

// rootCmd represents the base command; the positional argument selects the
// profile field to print.
var rootCmd = &cobra.Command{
	Use:   "intra [command]",
	Short: "intra - 42 intranet profile viewer",
	Long: `intra prints fields of your 42 intranet profile from the command line.

Available commands: ` + command.TokenList() + `

  • id         - numeric user id
  • me         - summary: name, title, wallet, points, cursus, blackhole
  • email      - account email
  • login      - intra login (default)
  • point      - correction point balance
  • wallet     - wallet balance
  • blackhole  - days until the blackhole deadline (negative if past)

On first run the required OAuth application credentials are collected
interactively and stored under the per-user config directory.`,
	Version: version.GetVersion(),
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger based on verbose flag
		development := logger.IsDevelopment()
		logLevel := "info"
		if verbose {
			logLevel = "debug"
		}
		if err := logger.Init(logLevel, development); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	token := defaultToken
	if len(args) > 0 {
		token = args[0]
	}

	path, err := config.ResolvePath(cfgFile)
	if err != nil {
		return err
	}

	return app.New(path, os.Stdin, os.Stdout).Run(cmd.Context(), token)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: <user config dir>/intra/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	// Version template
	rootCmd.SetVersionTemplate(`{{printf "intra %s\n" .Version}}`)
}
