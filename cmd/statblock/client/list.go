package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-statblock/internal/handlers/statblock/v1alpha1"
)

var (
	pageSize int
	offset   int
	long     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored creatures, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&pageSize, "page-size", 0, "Records per page (server default when 0)")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Records to skip")
	listCmd.Flags().BoolVar(&long, "long", false, "Print full records as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.ListCreatures(ctx, &v1alpha1.ListCreaturesRequest{PageSize: pageSize, Offset: offset})
	if err != nil {
		return fmt.Errorf("failed to list creatures: %w", err)
	}

	if long {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	for _, r := range resp.Records {
		fmt.Fprintf(out, "%s\t%s\t%s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Name())
	}
	fmt.Fprintf(out, "%d of %d", len(resp.Records), resp.TotalSize)
	if resp.NextOffset > 0 {
		fmt.Fprintf(out, " (next offset %d)", resp.NextOffset)
	}
	fmt.Fprintln(out)
	return nil
}
