package creature

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is reported through core.Entity
const EntityType = "creature"

// Format names the typesetting convention a statblock was written in
type Format string

// Known formats
const (
	FormatStandard Format = "standard"
	FormatOSR      Format = "osr"
)

// Record is a stored, identified creature together with the text it came from
type Record struct {
	ID        string    `json:"id"`
	Creature  *Creature `json:"creature"`
	Source    []string  `json:"source,omitempty"`
	Format    Format    `json:"format,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var _ core.Entity = (*Record)(nil)

// GetID implements core.Entity
func (r *Record) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r *Record) GetType() string {
	return EntityType
}

// Name returns the creature name, or empty when no creature is attached
func (r *Record) Name() string {
	if r.Creature == nil {
		return ""
	}
	return r.Creature.Name
}
