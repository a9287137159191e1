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

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		state      segmentState
		current    patterns.BlockID
		classified patterns.BlockID
		reopened   bool
		titled     bool
		inTop      bool
		wantState  segmentState
		wantBlock  patterns.BlockID
	}{
		{
			name:       "first block opens",
			state:      stateSearchingTop,
			classified: patterns.BlockRacialDetails,
			inTop:      true,
			wantState:  stateInBlock,
			wantBlock:  patterns.BlockRacialDetails,
		},
		{
			name:       "ability names start a run",
			state:      stateInBlock,
			current:    patterns.BlockSpeed,
			classified: patterns.BlockAbilities,
			inTop:      true,
			wantState:  stateInAbilityRun,
			wantBlock:  patterns.BlockAbilities,
		},
		{
			name:      "scores continue the run",
			state:     stateInAbilityRun,
			current:   patterns.BlockAbilities,
			inTop:     true,
			wantState: stateInAbilityRun,
			wantBlock: patterns.BlockAbilities,
		},
		{
			name:       "another ability name stays in the run",
			state:      stateInAbilityRun,
			current:    patterns.BlockAbilities,
			classified: patterns.BlockAbilities,
			inTop:      true,
			wantState:  stateInAbilityRun,
			wantBlock:  patterns.BlockAbilities,
		},
		{
			name:      "titled line in the header opens features",
			state:     stateInBlock,
			current:   patterns.BlockLanguages,
			titled:    true,
			inTop:     true,
			wantState: stateInBlock,
			wantBlock: patterns.BlockFeatures,
		},
		{
			name:      "titled line after a later header block returns to features",
			state:     stateInBlock,
			current:   patterns.BlockChallenge,
			titled:    true,
			inTop:     true,
			wantState: stateInBlock,
			wantBlock: patterns.BlockFeatures,
		},
		{
			name:      "titled line after prose stays put",
			state:     stateInBlock,
			current:   patterns.BlockActions,
			titled:    true,
			wantState: stateInBlock,
			wantBlock: patterns.BlockActions,
		},
		{
			name:      "continuation line",
			state:     stateInBlock,
			current:   patterns.BlockSenses,
			inTop:     true,
			wantState: stateInBlock,
			wantBlock: patterns.BlockSenses,
		},
		{
			name:      "nothing open yet",
			state:     stateSearchingTop,
			inTop:     true,
			wantState: stateSearchingTop,
			wantBlock: patterns.BlockNone,
		},
		{
			name:       "closed block does not reopen",
			state:      stateInBlock,
			current:    patterns.BlockActions,
			classified: patterns.BlockArmor,
			reopened:   true,
			wantState:  stateInBlock,
			wantBlock:  patterns.BlockActions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, block := transition(tt.state, tt.current, tt.classified, tt.reopened, tt.titled, tt.inTop)
			assert.Equal(t, tt.wantState.String(), state.String())
			assert.Equal(t, tt.wantBlock, block)
		})
	}
}

type SegmenterTestSuite struct {
	suite.Suite
}

func (s *SegmenterTestSuite) accountFor(lines []string, seg *Segmentation) {
	s.Equal(len(lines)-1, len(seg.Ignored)+seg.Assigned()+len(seg.Unclassified),
		"every line after the name is ignored, assigned or unclassified")
}

func (s *SegmenterTestSuite) TestGoblin() {
	seg := Segment(testutils.GoblinLines)

	s.Equal("Goblin", seg.Name)
	s.Equal([]patterns.BlockID{
		patterns.BlockRacialDetails,
		patterns.BlockArmor,
		patterns.BlockHealth,
		patterns.BlockSpeed,
	}, seg.Order)
	s.Empty(seg.Unclassified)
	s.Equal(creature.FormatStandard, seg.Format)
	s.accountFor(testutils.GoblinLines, seg)
}

func (s *SegmenterTestSuite) TestLeadingBlankLines() {
	seg := Segment([]string{"", "  ", "Goblin", "Armor Class 15"})

	s.Equal("Goblin", seg.Name)
	s.Len(seg.Ignored, 2)
	s.Equal([]string{"Armor Class 15"}, seg.Lines(patterns.BlockArmor))
}

func (s *SegmenterTestSuite) TestNoName() {
	seg := Segment([]string{"", " "})

	s.Empty(seg.Name)
	s.Len(seg.Ignored, 2)
	s.Zero(seg.Assigned())
}

func (s *SegmenterTestSuite) TestStrayLineBeforeAnyBlock() {
	lines := []string{"Goblin", "found in the hills", "Armor Class 15"}
	seg := Segment(lines)

	s.Require().Len(seg.Unclassified, 1)
	s.Equal(Line{Index: 1, Text: "found in the hills"}, seg.Unclassified[0])
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestProficiencyBonusIgnored() {
	lines := []string{"Goblin", "Speed 30 ft.", "Proficiency Bonus +2", "Languages Common"}
	seg := Segment(lines)

	s.Require().Len(seg.Ignored, 1)
	s.Equal(2, seg.Ignored[0].Index)
	s.NotContains(seg.Order, patterns.BlockProficiencyBonus)
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestWrappedHeaderLines() {
	lines := SplitLines(testutils.Ruinant)
	seg := Segment(lines)

	s.Equal([]string{"Medium Fiend (Demon, Category 2),", "Typically Chaotic Evil"},
		seg.Lines(patterns.BlockRacialDetails))
	s.Equal([]string{"Senses darkvision 120 ft., soulsight 30 ft., passive", "Perception 17"},
		seg.Lines(patterns.BlockSenses))
	s.Empty(seg.Unclassified)
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestFeaturesOpenOnFirstTitle() {
	lines := SplitLines(testutils.Cursespitter)
	seg := Segment(lines)

	features := seg.Lines(patterns.BlockFeatures)
	s.Require().Len(features, 2)
	s.Equal("Crafty. The cursespitter doesn’t provoke opportunity attacks", features[0])

	s.Equal([]string{"CR 1 Controller", "200 XP"}, seg.Lines(patterns.BlockChallenge))
	s.Equal(patterns.BlockChallenge, seg.Order[len(seg.Order)-1])
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestClosedBlockKeywordStaysInProse() {
	lines := []string{
		"Golem",
		"Armor Class 12",
		"ACTIONS",
		"Slam. Melee Weapon Attack: +4 to hit, reach 5 ft., one target.",
		"Armor Class 20 while the golem is braced.",
	}
	seg := Segment(lines)

	s.Equal([]string{"Armor Class 12"}, seg.Lines(patterns.BlockArmor))
	s.Len(seg.Lines(patterns.BlockActions), 3)
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestWrappedListTailContinuesHeader() {
	lines := testutils.OrcWarriorLines
	seg := Segment(lines)

	s.Equal([]string{"Languages Common, Elvish,", "Orc."}, seg.Lines(patterns.BlockLanguages))
	s.Equal([]string{"Challenge ½ (100 XP)"}, seg.Lines(patterns.BlockChallenge))
	s.Equal([]string{"Aggressive. As a bonus action, the orc moves."}, seg.Lines(patterns.BlockFeatures))
	s.Len(seg.Lines(patterns.BlockActions), 2)
	s.Empty(seg.Unclassified)
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestFeaturesResumeAfterHeaderLine() {
	lines := []string{
		"Goblin",
		"Speed 30 ft.",
		"Nimble Escape. The goblin can disengage as a bonus action.",
		"Challenge 1/4 (50 XP)",
		"Aggressive. As a bonus action, the goblin moves.",
		"ACTIONS",
		"Scimitar. Melee Weapon Attack: +4 to hit, reach 5 ft., one target.",
	}
	seg := Segment(lines)

	s.Equal([]string{"Challenge 1/4 (50 XP)"}, seg.Lines(patterns.BlockChallenge))
	s.Equal([]string{
		"Nimble Escape. The goblin can disengage as a bonus action.",
		"Aggressive. As a bonus action, the goblin moves.",
	}, seg.Lines(patterns.BlockFeatures))
	s.Equal([]string{"ACTIONS", "Scimitar. Melee Weapon Attack: +4 to hit, reach 5 ft., one target."},
		seg.Lines(patterns.BlockActions))
	s.Empty(seg.Unclassified)
	s.accountFor(lines, seg)
}

func (s *SegmenterTestSuite) TestOSRComposite() {
	seg := Segment(SplitLines(testutils.OSRScout))

	s.Equal(creature.FormatOSR, seg.Format)
	s.Equal([]string{"HP 11"}, seg.Lines(patterns.BlockHealth))
	s.Equal([]string{"AC 15 (leather, shield)"}, seg.Lines(patterns.BlockArmor))
	s.Equal([]string{"Speed 30’"}, seg.Lines(patterns.BlockSpeed))
	s.Contains(seg.Order, patterns.BlockFeatures)
}

func (s *SegmenterTestSuite) TestFixturesFullyClassified() {
	for name, text := range map[string]string{
		"cursespitter": testutils.Cursespitter,
		"ruinant":      testutils.Ruinant,
		"lady emer":    testutils.LadyEmer,
		"uber npc":     testutils.UberNPC,
	} {
		s.Run(name, func() {
			lines := SplitLines(text)
			seg := Segment(lines)
			s.Empty(seg.Unclassified)
			s.accountFor(lines, seg)
		})
	}
}

func TestSegmenterTestSuite(t *testing.T) {
	suite.Run(t, new(SegmenterTestSuite))
}

func TestSegmentationLines(t *testing.T) {
	seg := Segment(testutils.GoblinLines)
	require.NotNil(t, seg)
	assert.Nil(t, seg.Lines(patterns.BlockActions))
	assert.Equal(t, 4, seg.Assigned())
}
