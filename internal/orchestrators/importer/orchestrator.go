// Package importer turns pasted statblocks into stored creature records
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/rpg-statblock/internal/orchestrators/importer Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/parser"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/idgen"
	creaturerepo "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature"
)

const (
	// DefaultPageSize is used when a list request does not set one
	DefaultPageSize = 20
	// MaxPageSize caps list requests
	MaxPageSize = 100
)

// Service defines the interface for statblock import operations
type Service interface {
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
	GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error)
	ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error)
	DeleteCreature(ctx context.Context, input *DeleteCreatureInput) (*DeleteCreatureOutput, error)
}

// Config holds the dependencies for the importer
type Config struct {
	Parser      *parser.Parser
	Repository  creaturerepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Roller is only needed when hit points are rolled. Defaults to rpg-toolkit dice.
	Roller Roller
	// AlwaysRollHitPoints rolls hit points on every import
	AlwaysRollHitPoints bool
	Logger              *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type orchestrator struct {
	parser     *parser.Parser
	repo       creaturerepo.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	roller     Roller
	alwaysRoll bool
	logger     *slog.Logger
}

// NewOrchestrator creates a new importer with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		parser:     cfg.Parser,
		repo:       cfg.Repository,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		roller:     cfg.Roller,
		alwaysRoll: cfg.AlwaysRollHitPoints,
		logger:     cfg.Logger,
	}
	if o.roller == nil {
		o.roller = NewToolkitRoller()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o, nil
}

// Import parses the statblock and stores the resulting record
func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.InvalidArgument("statblock text is required")
	}

	lines := parser.SplitLines(input.Text)
	res, err := o.parser.Parse(lines)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse statblock")
	}

	if input.RollHitPoints || o.alwaysRoll {
		if err := o.rollHitPoints(res.Creature); err != nil {
			return nil, err
		}
	}

	record := &creature.Record{
		ID:        o.idGen.Generate(),
		Creature:  res.Creature,
		Source:    lines,
		Format:    res.Format,
		CreatedAt: o.clock.Now(),
	}

	unclassified := make([]string, len(res.Segmentation.Unclassified))
	for i, l := range res.Segmentation.Unclassified {
		unclassified[i] = l.Text
	}

	out := &ImportOutput{Record: record, Unclassified: unclassified}
	if input.DryRun {
		return out, nil
	}

	if _, err := o.repo.Create(ctx, creaturerepo.CreateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store creature")
	}
	out.Stored = true

	o.logger.Info("imported statblock",
		"id", record.ID,
		"name", record.Name(),
		"format", record.Format,
		"unclassified", len(unclassified))

	return out, nil
}

// rollHitPoints replaces the printed hit points with a rolled total. A
// creature without a hit point formula is left as printed.
func (o *orchestrator) rollHitPoints(c *creature.Creature) error {
	if c.Health == nil || c.Health.Formula == "" {
		return nil
	}

	total, err := o.roller.Roll(c.Health.Formula)
	if err != nil {
		return errors.Wrapf(err, "failed to roll hit points for %s", c.Name)
	}
	c.Health.Average = c.Health.Value
	c.Health.Value = total
	return nil
}

// GetCreature returns a stored creature
func (o *orchestrator) GetCreature(ctx context.Context, input *GetCreatureInput) (*GetCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	out, err := o.repo.Get(ctx, creaturerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %s", input.ID)
	}
	return &GetCreatureOutput{Record: out.Record}, nil
}

// ListCreatures returns stored creatures newest first
func (o *orchestrator) ListCreatures(ctx context.Context, input *ListCreaturesInput) (*ListCreaturesOutput, error) {
	if input == nil {
		input = &ListCreaturesInput{}
	}
	if input.Offset < 0 {
		return nil, errors.InvalidArgument("offset cannot be negative")
	}

	pageSize := input.PageSize
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	out, err := o.repo.List(ctx, creaturerepo.ListInput{Limit: pageSize, Offset: input.Offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	next := 0
	if end := input.Offset + len(out.Records); end < out.Total && len(out.Records) > 0 {
		next = end
	}
	return &ListCreaturesOutput{
		Records:    out.Records,
		TotalSize:  out.Total,
		NextOffset: next,
	}, nil
}

// DeleteCreature removes a stored creature
func (o *orchestrator) DeleteCreature(ctx context.Context, input *DeleteCreatureInput) (*DeleteCreatureOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("creature ID is required")
	}

	if _, err := o.repo.Delete(ctx, creaturerepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature %s", input.ID)
	}

	o.logger.Info("deleted creature", "id", input.ID)
	return &DeleteCreatureOutput{}, nil
}
