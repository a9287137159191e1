// Package creature defines persistence for imported creature records
package creature

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturemock github.com/KirkDiggler/rpg-statblock/internal/repositories/creature Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

const (
	errRecordNil     = "creature record cannot be nil"
	errRecordIDEmpty = "creature ID cannot be empty"
)

// Repository defines the interface for creature record persistence
type Repository interface {
	// Create stores a new record
	// Returns errors.InvalidArgument for a nil record or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns records newest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for storing a record
type CreateInput struct {
	Record *creature.Record
}

// CreateOutput defines the output for storing a record
type CreateOutput struct {
	Record *creature.Record
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *creature.Record
}

// ListInput defines the input for listing records. Offset counts records
// skipped from the newest.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*creature.Record
	Total   int
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

func validateRecord(r *creature.Record) error {
	if r == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if r.ID == "" {
		return errors.InvalidArgument(errRecordIDEmpty)
	}
	return nil
}
