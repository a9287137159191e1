package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
	"github.com/KirkDiggler/rpg-statblock/internal/testutils"
)

// renderEntries prints entries back out one line each, the way they would
// look if the block had been pasted without wrapping.
func renderEntries(entries []creature.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		body := stripParagraphs(e.Body)
		if e.Title == creature.DescriptionTitle {
			lines = append(lines, body)
			continue
		}
		lines = append(lines, joinText(terminate(e.Title), body))
	}
	return lines
}

func titles(entries []creature.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestEndsParagraph(t *testing.T) {
	tests := []struct {
		name      string
		cur, next string
		want      bool
	}{
		{"next opens a block", "one creature", "REACTIONS", true},
		{"sentence then capital", "The attack hits the ally instead.", "The target regains", true},
		{"next is titled", "a clause,", "Bite. Melee Weapon Attack: +4 to hit,", true},
		{"bullet", "Choose one", "• a bonus action", true},
		{"wrapped sentence", "must succeed on a DC", "18 Constitution saving throw", false},
		{"wrapped lowercase", "The attack hits the ally instead.", "ally instead.", false},
		{"capital without terminator", "The ruinant makes three Bloodletting", "Claws attacks and more damage", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endsParagraph(tt.cur, tt.next))
		})
	}
}

type ReassemblerTestSuite struct {
	suite.Suite
}

func (s *ReassemblerTestSuite) TestTitledEntries() {
	entries := Reassemble([]string{
		"Multiattack. The ruinant makes three Bloodletting",
		"Claws attacks.",
		"Bloodletting Claws. Melee Weapon Attack: +7 to hit, reach",
		"5 ft., one creature. Hit: 7 (1d6 + 4) piercing damage.",
	})

	s.Require().Len(entries, 2)
	s.Equal(creature.Entry{
		Title: "Multiattack",
		Body:  "The ruinant makes three Bloodletting Claws attacks.",
	}, entries[0])
	s.Equal("Bloodletting Claws", entries[1].Title)
	s.Equal("Melee Weapon Attack: +7 to hit, reach 5 ft., one creature. Hit: 7 (1d6 + 4) piercing damage.", entries[1].Body)
}

func (s *ReassemblerTestSuite) TestDescriptionFirst() {
	entries := Reassemble([]string{
		"The lich can take 3 legendary actions, choosing from",
		"the options below.",
		"Cantrip. The lich casts a cantrip.",
	})

	s.Equal([]string{creature.DescriptionTitle, "Cantrip"}, titles(entries))
	s.Equal("The lich can take 3 legendary actions, choosing from the options below.", entries[0].Body)
}

func (s *ReassemblerTestSuite) TestConsecutivePhrasesCollapse() {
	entries := Reassemble([]string{"Alpha.", "Beta."})

	s.Equal([]creature.Entry{{Title: "Alpha", Body: "Beta."}}, entries)
}

func (s *ReassemblerTestSuite) TestDanglingTitleFoldsBack() {
	entries := Reassemble([]string{"Alpha. Some body text.", "Beta."})

	s.Equal([]creature.Entry{{Title: "Alpha", Body: "Some body text. Beta."}}, entries)
}

func (s *ReassemblerTestSuite) TestFirstEntryKeepsTitleWithoutBody() {
	entries := Reassemble([]string{"Alpha."})

	s.Equal([]creature.Entry{{Title: "Alpha"}}, entries)
}

func (s *ReassemblerTestSuite) TestShoutedTitle() {
	entries := Reassemble([]string{
		"To Me! The cursespitter chooses up to two willing crea-",
		"tures they can see within 30 feet of them.",
	})

	s.Require().Len(entries, 1)
	s.Equal("To Me", entries[0].Title)
	s.Equal("The cursespitter chooses up to two willing creatures they can see within 30 feet of them.", entries[0].Body)
}

func (s *ReassemblerTestSuite) TestSpellSaveIsNotATitle() {
	entries := Reassemble([]string{
		"Hex. The witch curses a creature. Wither (spell save DC 13). The target withers.",
	})

	s.Require().Len(entries, 1)
	s.Equal("Hex", entries[0].Title)
}

func (s *ReassemblerTestSuite) TestBullets() {
	entries := Reassemble([]string{
		"Shift. The hag picks one:",
		"• She turns invisible.",
		"• She flies.",
	})

	s.Require().Len(entries, 1)
	s.Equal("<p>The hag picks one:</p><p>• She turns invisible.</p><p>• She flies.</p>", entries[0].Body)
}

func (s *ReassemblerTestSuite) TestSpellPassageIsolated() {
	entries := Reassemble([]string{
		"Spellcasting. The mage is a 9th-level spellcaster. It has",
		"the following wizard spells prepared:",
		"Cantrips (at will): fire bolt, light",
		"1st level (4 slots): magic missile, shield",
		"Arcane Ward. The mage has a ward.",
	})

	s.Require().Equal([]string{"Arcane Ward", "Spellcasting"}, titles(entries))
	s.Equal("The mage is a 9th-level spellcaster. It has the following wizard spells prepared: "+
		"Cantrips (at will): fire bolt, light 1st level (4 slots): magic missile, shield.", entries[1].Body)
}

func (s *ReassemblerTestSuite) TestIdempotent() {
	p := newTestParser(s.T())
	for name, text := range map[string]string{
		"lady emer": testutils.LadyEmer,
		"uber npc":  testutils.UberNPC,
		"ruinant":   testutils.Ruinant,
	} {
		s.Run(name, func() {
			res, err := p.ParseText(text)
			s.Require().NoError(err)

			for _, id := range []patterns.BlockID{
				patterns.BlockFeatures,
				patterns.BlockActions,
				patterns.BlockReactions,
				patterns.BlockLegendaryActions,
				patterns.BlockMythicActions,
			} {
				lines := res.Segmentation.Lines(id)
				if len(lines) == 0 {
					continue
				}
				if id != patterns.BlockFeatures {
					lines = lines[1:]
				}
				first := Reassemble(lines)
				second := Reassemble(renderEntries(first))
				s.Equal(first, second, "block %s", id)
			}
		})
	}
}

func TestReassemblerTestSuite(t *testing.T) {
	suite.Run(t, new(ReassemblerTestSuite))
}

func TestReassembleEmpty(t *testing.T) {
	require.Empty(t, Reassemble(nil))
	require.Empty(t, Reassemble([]string{"", " "}))
}
