package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/parser"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse one statblock and print the creature",
	Long: `Parse a statblock from a file, or from stdin when the file is "-" or omitted,
and print the extracted creature. Lines that could not be classified are
logged as warnings on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "o", formatJSON, "output format: json or yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := validateFormat(parseFormat); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name, text, err := readInput(args)
	if err != nil {
		return err
	}

	p, err := parser.New(&parser.Config{Logger: cfg.NewLogger(cmd.ErrOrStderr())})
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	res, err := p.ParseText(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return writeOutput(cmd.OutOrStdout(), parseFormat, res.Creature)
}
