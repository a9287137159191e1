package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Parse many statblock files concurrently",
	Long: `Parse every named file and print one JSON document per line, in argument
order. The first file that cannot be read or parsed aborts the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "files parsed at once (overrides STATBLOCK_BATCH_WORKERS)")
}

// batchResult is one line of batch output
type batchResult struct {
	File         string             `json:"file"`
	Format       creature.Format    `json:"format"`
	Creature     *creature.Creature `json:"creature"`
	Unclassified []string           `json:"unclassified,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}

	p, err := parser.New(&parser.Config{Logger: cfg.NewLogger(cmd.ErrOrStderr())})
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	results, err := parseFiles(cmd.Context(), p, args, workers)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", r.File, err)
		}
	}
	return nil
}

// parseFiles parses files with at most workers in flight. Results keep the
// order of files.
func parseFiles(ctx context.Context, p *parser.Parser, files []string, workers int) ([]*batchResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	results := make([]*batchResult, len(files))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			res, err := p.ParseText(string(data))
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			unclassified := make([]string, len(res.Segmentation.Unclassified))
			for j, l := range res.Segmentation.Unclassified {
				unclassified[j] = l.Text
			}
			results[i] = &batchResult{
				File:         file,
				Format:       res.Format,
				Creature:     res.Creature,
				Unclassified: unclassified,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
