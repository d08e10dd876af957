// Package main is the entry point for the intra CLI application.
package main

import (
	"os"

	"github.com/peer-tools/intra/cmd/intra/cmd"
	"github.com/peer-tools/intra/internal/logger"
)

func main() {
	// Initialize default logger (reconfigured once flags are parsed)
	logger.InitDefault()
	defer logger.Sync()

	// Execute the root command
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
