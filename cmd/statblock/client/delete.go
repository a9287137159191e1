package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/handlers/statblock/v1alpha1"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [creature-id]",
	Short: "Delete a stored creature",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if _, err := client.DeleteCreature(ctx, &v1alpha1.DeleteCreatureRequest{ID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete creature: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
