package importer

import (
	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
)

// ImportInput defines the request for importing a statblock
type ImportInput struct {
	Text string
	// RollHitPoints replaces the printed hit points with a roll of the
	// printed formula. The printed value is kept as the average.
	RollHitPoints bool
	// DryRun parses and returns the record without storing it
	DryRun bool
}

// ImportOutput defines the response for importing a statblock
type ImportOutput struct {
	Record       *creature.Record
	Unclassified []string
	Stored       bool
}

// GetCreatureInput defines the request for getting a stored creature
type GetCreatureInput struct {
	ID string
}

// GetCreatureOutput defines the response for getting a stored creature
type GetCreatureOutput struct {
	Record *creature.Record
}

// ListCreaturesInput defines the request for listing stored creatures
type ListCreaturesInput struct {
	PageSize int
	Offset   int
}

// ListCreaturesOutput defines the response for listing stored creatures
type ListCreaturesOutput struct {
	Records    []*creature.Record
	TotalSize  int
	NextOffset int
}

// DeleteCreatureInput defines the request for deleting a stored creature
type DeleteCreatureInput struct {
	ID string
}

// DeleteCreatureOutput defines the response for deleting a stored creature
type DeleteCreatureOutput struct{}
