package patterns_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

func TestBlockPatternsOrder(t *testing.T) {
	bp := patterns.BlockPatterns()
	require.NotEmpty(t, bp)

	assert.Equal(t, patterns.BlockArmor, bp[0].ID, "armor is tried first")
	assert.Equal(t, patterns.BlockInitiative, bp[len(bp)-1].ID, "initiative is tried last")

	seen := make(map[patterns.BlockID]bool)
	for _, p := range bp {
		assert.False(t, seen[p.ID], "block %s registered twice", p.ID)
		seen[p.ID] = true
		assert.NotNil(t, p.Pattern)
		assert.NotEqual(t, patterns.BlockFeatures, p.ID, "features has no opening line")
	}
}

func TestBlockPatternsReturnsCopy(t *testing.T) {
	bp := patterns.BlockPatterns()
	bp[0].ID = patterns.BlockNone

	assert.Equal(t, patterns.BlockArmor, patterns.BlockPatterns()[0].ID)
}

func TestBlockIDString(t *testing.T) {
	assert.Equal(t, "bonus_actions", patterns.BlockBonusActions.String())
	assert.Equal(t, "none", patterns.BlockNone.String())
	assert.Equal(t, "unknown", patterns.BlockID(999).String())

	out, err := json.Marshal(map[patterns.BlockID]int{patterns.BlockSenses: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"senses":2}`, string(out))
}

func TestBlockIDSections(t *testing.T) {
	for _, p := range patterns.BlockPatterns() {
		assert.False(t, p.ID.IsTop() && p.ID.IsProse(), "block %s is in both sections", p.ID)
	}
	assert.True(t, patterns.BlockFeatures.IsProse())
	assert.True(t, patterns.BlockSpeed.IsTop())
	assert.False(t, patterns.BlockNone.IsTop())
	assert.False(t, patterns.BlockNone.IsProse())
}

func TestNamed(t *testing.T) {
	m, ok := patterns.Named(patterns.RacialDetails, "Medium swarm of Tiny beasts, unaligned")
	require.True(t, ok)
	assert.Equal(t, "Medium", m["size"])
	assert.Equal(t, "Tiny", m["swarmsize"])
	assert.Equal(t, "beasts", m["type"])
	assert.Equal(t, "unaligned", m["alignment"])
	_, hasRace := m["race"]
	assert.False(t, hasRace, "unmatched optional groups are absent")

	_, ok = patterns.Named(patterns.RacialDetails, "Armor Class 15")
	assert.False(t, ok)
}

func TestNamedAll(t *testing.T) {
	all := patterns.NamedAll(patterns.SpeedDetails, "Speed 30 ft., fly 60 ft., swim 20 ft.")
	require.Len(t, all, 3)
	assert.Equal(t, "fly", all[1]["name"])
	assert.Equal(t, "20", all[2]["value"])

	assert.Empty(t, patterns.NamedAll(patterns.SpeedDetails, "—"))
}

func TestAtoi(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{"+4", 4, true},
		{"−1", -1, true},
		{"– 3", -3, true},
		{" 7 ", 7, true},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := patterns.Atoi(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldPatterns(t *testing.T) {
	t.Run("roll", func(t *testing.T) {
		m, ok := patterns.Named(patterns.RollDetails, "Hit Points 27 (5d6 + 10)")
		require.True(t, ok)
		assert.Equal(t, "27", m["value"])
		assert.Equal(t, "5d6 + 10", m["formula"])
	})

	t.Run("armor", func(t *testing.T) {
		m, ok := patterns.Named(patterns.ArmorDetails, "Armor Class 17 (natural armor)")
		require.True(t, ok)
		assert.Equal(t, "17", m["ac"])
		assert.Equal(t, "natural armor", m["armortype"])
	})

	t.Run("xp either side", func(t *testing.T) {
		m, ok := patterns.Named(patterns.ChallengeXP, "Challenge 11 (7,200 XP)")
		require.True(t, ok)
		assert.Equal(t, "7,200", m["xp"])

		m, ok = patterns.Named(patterns.ChallengeXP, "CR 1/4; XP 50")
		require.True(t, ok)
		assert.Equal(t, "50", m["xpafter"])
	})

	t.Run("osr composite", func(t *testing.T) {
		assert.True(t, patterns.OSRComposite.MatchString("HP 11; AC 15 (leather, shield); Speed 30’"))
		assert.False(t, patterns.OSRComposite.MatchString("Hit Points 11"))
	})

	t.Run("spellcaster level with soft hyphen", func(t *testing.T) {
		m, ok := patterns.Named(patterns.SpellcasterLevel, "is an 18th-\u00ad\u2010level spellcaster")
		require.True(t, ok)
		assert.Equal(t, "18", m["level"])
	})

	t.Run("title", func(t *testing.T) {
		for _, s := range []string{
			"Multiattack.",
			"To Me!",
			"Web of Hair (Costs 2 Actions).",
			"Legendary Resistance (3/Day).",
			"Dizzying Hex (2/Day; 1st-Level Spell).",
		} {
			assert.True(t, patterns.Title.MatchString(s), s)
		}
		for _, s := range []string{
			"the lich casts a cantrip.",
			"Emer uses Pinning Shot or makes three attacks.",
			"Multiattack",
		} {
			assert.False(t, patterns.Title.MatchString(s), s)
		}
	})

	t.Run("villain header", func(t *testing.T) {
		m, ok := patterns.Named(patterns.VillainActionHeader, "Action 1: I See You! Emer uses Stone Gaze")
		require.True(t, ok)
		assert.Equal(t, "1", m["number"])
		assert.Equal(t, "I See You!", m["title"])
	})

	t.Run("damage roll", func(t *testing.T) {
		all := patterns.NamedAll(patterns.DamageRoll, "Hit: 11 (1d8 + 7) piercing damage plus 14 (4d6) poison damage.")
		require.Len(t, all, 2)
		assert.Equal(t, "1d8 + 7", all[0]["formula"])
		assert.Equal(t, "poison", all[1]["type"])
	})
}
