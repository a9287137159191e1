package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-statblock/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("test")
	assert.Equal(t, "test_1", gen.Generate())
	assert.Equal(t, "test_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID(idgen.CreaturePrefix)

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "creature_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "creature_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}
