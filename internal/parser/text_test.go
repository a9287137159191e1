package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	lines := SplitLines("Goblin\r\n\n  Small Humanoid  \nnon-\u00adundead\n")
	assert.Equal(t, []string{"Goblin", "Small Humanoid", "non-undead"}, lines)
	assert.Empty(t, SplitLines(" \n\t\n"))
}

func TestJoinText(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"empty left", "", "Bite.", "Bite."},
		{"empty right", "Bite.", " ", "Bite."},
		{"plain", "reach", "5 ft.", "reach 5 ft."},
		{"hyphenated word", "DC 12 Constitu-", "tion saving throw", "DC 12 Constitution saving throw"},
		{"hyphen before capital", "non-", "Undead", "non- Undead"},
		{"hyphen after digit", "1-", "2", "1- 2"},
		{"formula across lines", "9 (2d6 +", "2) piercing", "9 (2d6 + 2) piercing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinText(tt.a, tt.b))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Bite. Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2)")
	assert.Equal(t, []string{
		"Bite.",
		"Melee Weapon Attack: +4 to hit, reach 5 ft., one target.",
		"Hit: 5 (1d6 + 2).",
	}, got)

	assert.Equal(t, []string{"To Me!", "Each creature is teleported."},
		splitSentences("To Me! Each creature is teleported."))
	assert.Empty(t, splitSentences("   "))
}

func TestFirstSentence(t *testing.T) {
	assert.Equal(t, "Crafty.", firstSentence("Crafty. The cursespitter doesn’t provoke"))
	assert.Equal(t, "Claws attacks.", firstSentence("Claws attacks."))
	assert.Equal(t, "", firstSentence("Typically Chaotic Evil"))
	assert.Equal(t, "", firstSentence("range 150/600 ft., one"))
}

func TestIsTitle(t *testing.T) {
	assert.True(t, isTitle("Envenomed Stone (Recharge 5–6)."))
	assert.False(t, isTitle("Hex (spell save DC 13)."))
	assert.False(t, isTitle(""))
	assert.True(t, looksLikeTitledLine("Snake Bite. Melee Weapon Attack: +11 to hit, reach 10 ft.,"))
	assert.False(t, looksLikeTitledLine("Typically Chaotic Evil"))
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "power word kill.", terminate("power word kill"))
	assert.Equal(t, "prepared:", terminate("prepared:"))
	assert.Equal(t, "Done!", terminate("Done!"))
	assert.Equal(t, "", terminate(""))
}

func TestStripLabel(t *testing.T) {
	assert.Equal(t, "poison", stripLabel("Damage Immunities poison", traitLabels...))
	assert.Equal(t, "1/4", stripLabel("CR 1/4", "challenge rating", "challenge", "cr"))
	assert.Equal(t, "darkvision 60 ft.", stripLabel(" darkvision 60 ft. ", "senses"))
}

func TestFormatBody(t *testing.T) {
	assert.Equal(t, "plain text.", formatBody("plain text."))
	assert.Equal(t,
		"<p>Choose one:</p><p>• first.</p><p>• second.</p>",
		formatBody("Choose one: • first. • second."))
	assert.Equal(t, "Choose one: • first. • second.",
		stripParagraphs("<p>Choose one:</p><p>• first.</p><p>• second.</p>"))
}
