package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/handlers/statblock/v1alpha1"
)

var (
	rollHitPoints bool
	dryRun        bool
)

var importCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import a statblock",
	Long:  `Send a statblock from a file, or stdin, to the server and print the stored record.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&rollHitPoints, "roll-hit-points", false, "Roll hit points from the printed formula")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse without storing")
}

func runImport(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ImportStatblock(ctx, &v1alpha1.ImportStatblockRequest{
		Text:          text,
		RollHitPoints: rollHitPoints,
		DryRun:        dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to import statblock: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp)
}
