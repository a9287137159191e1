package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/handlers/statblock/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get [creature-id]",
	Short: "Get a stored creature",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetCreature(ctx, &v1alpha1.GetCreatureRequest{ID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get creature: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp.Record)
}
