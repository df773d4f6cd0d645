// Package main is the entry point for the character sheet API server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/madking-api/cmd/server/client"
	"github.com/KirkDiggler/madking-api/internal/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "madking",
	Short: "Character sheet API server",
	Long:  `madking serves a REST API for managing tabletop RPG characters and the catalog of races, classes, origins, items and spells they draw on.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads configuration and installs the process logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return cfg, nil
}
