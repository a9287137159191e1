// Package main is the entry point for the statblock tool
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/cmd/statblock/client"
	"github.com/KirkDiggler/rpg-statblock/internal/config"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "statblock",
	Short: "Statblock parser and import server",
	Long: `statblock turns pasted monster statblocks into structured creature records.
It can parse files locally or run a gRPC server that stores imported creatures.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
