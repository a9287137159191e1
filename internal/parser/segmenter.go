package parser

import (
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

// segmentState is where the segmenter is in the statblock
type segmentState int

const (
	// stateSearchingTop means no block is open yet
	stateSearchingTop segmentState = iota
	// stateInBlock means unclassified lines continue the open block
	stateInBlock
	// stateInAbilityRun means ability names and scores are being collected
	stateInAbilityRun
)

func (s segmentState) String() string {
	switch s {
	case stateSearchingTop:
		return "searching-top-level"
	case stateInBlock:
		return "in-known-block"
	case stateInAbilityRun:
		return "in-ability-run"
	default:
		return "unknown"
	}
}

// Line is an input line with its position in the original input
type Line struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Segmentation is the result of walking a statblock once
type Segmentation struct {
	Name string `json:"name"`
	// Order lists blocks in the order they were opened
	Order        []patterns.BlockID            `json:"order"`
	Blocks       map[patterns.BlockID][]string `json:"blocks"`
	Ignored      []Line                        `json:"ignored,omitempty"`
	Unclassified []Line                        `json:"unclassified,omitempty"`
	Format       creature.Format               `json:"format"`
}

// Lines returns the lines assigned to a block
func (s *Segmentation) Lines(id patterns.BlockID) []string {
	return s.Blocks[id]
}

// Assigned counts the lines that landed in a block
func (s *Segmentation) Assigned() int {
	n := 0
	for _, lines := range s.Blocks {
		n += len(lines)
	}
	return n
}

// transition decides which block a line belongs to and the state that
// follows. classified is the block the line opens, reopened is set when
// that block was already closed earlier, titled when the line starts with
// an entry header and inTop while no prose heading has been read. A
// returned BlockNone means the line is unclassified.
func transition(
	state segmentState,
	current, classified patterns.BlockID,
	reopened, titled, inTop bool,
) (segmentState, patterns.BlockID) {
	if classified != patterns.BlockNone && !reopened {
		if classified == patterns.BlockAbilities {
			return stateInAbilityRun, classified
		}
		return stateInBlock, classified
	}

	// The features block has no heading of its own. Its first titled entry
	// opens it while the header section is still being read.
	if inTop && titled {
		return stateInBlock, patterns.BlockFeatures
	}

	if current == patterns.BlockNone {
		return stateSearchingTop, patterns.BlockNone
	}
	return state, current
}

type segmenter struct {
	state   segmentState
	current patterns.BlockID
	inTop   bool
	seg     *Segmentation
}

// Segment assigns every line after the name to a block. Lines are either
// ignored, assigned to exactly one block or recorded as unclassified.
func Segment(lines []string) *Segmentation {
	s := &segmenter{
		state: stateSearchingTop,
		inTop: true,
		seg: &Segmentation{
			Blocks: make(map[patterns.BlockID][]string),
			Format: creature.FormatStandard,
		},
	}

	named := false
	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		if !named {
			if text == "" {
				s.seg.Ignored = append(s.seg.Ignored, Line{Index: i, Text: raw})
				continue
			}
			s.seg.Name = text
			named = true
			continue
		}

		if patterns.OSRComposite.MatchString(text) {
			s.seg.Format = creature.FormatOSR
			for _, part := range strings.Split(text, ";") {
				if part = strings.TrimSpace(part); part != "" {
					s.step(Line{Index: i, Text: part})
				}
			}
			continue
		}
		s.step(Line{Index: i, Text: text})
	}
	return s.seg
}

func (s *segmenter) step(line Line) {
	classified := Classify(line.Text)
	if IsIgnored(line.Text) || classified == patterns.BlockProficiencyBonus {
		s.seg.Ignored = append(s.seg.Ignored, line)
		return
	}

	_, seen := s.seg.Blocks[classified]
	reopened := classified != patterns.BlockNone && seen && classified != s.current
	titled := classified == patterns.BlockNone && looksLikeTitledLine(line.Text) && !s.headerWraps()

	state, target := transition(s.state, s.current, classified, reopened, titled, s.inTop)
	if target == patterns.BlockNone {
		s.seg.Unclassified = append(s.seg.Unclassified, line)
		s.state = state
		return
	}

	if _, ok := s.seg.Blocks[target]; !ok {
		s.seg.Order = append(s.seg.Order, target)
	}
	s.seg.Blocks[target] = append(s.seg.Blocks[target], line.Text)
	s.state, s.current = state, target
	// Features opened by a titled line leave the header section open, so
	// header lines read after them still route the next title to features.
	if classified.IsProse() {
		s.inTop = false
	}
}

// headerWraps reports whether the open header block ends mid-list, so the
// next line continues it even when it reads like an entry title.
func (s *segmenter) headerWraps() bool {
	if !s.current.IsTop() {
		return false
	}
	lines := s.seg.Blocks[s.current]
	return len(lines) > 0 && strings.HasSuffix(lines[len(lines)-1], ",")
}
