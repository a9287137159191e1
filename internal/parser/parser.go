// Package parser turns pasted statblock text into a creature record.
//
// The pipeline runs in one pass: each line is classified, the segmenter
// groups lines into blocks, prose blocks are reassembled into titled
// entries and an extractor per block fills the record. Extraction is best
// effort and a field that cannot be read is left empty.
package parser

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

const errNoLines = "statblock has no lines"

// Config holds the parser's collaborators
type Config struct {
	// Logger receives unclassified line warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// Parser is immutable after construction and safe for concurrent use
type Parser struct {
	logger *slog.Logger
}

// New creates a parser
func New(cfg *Config) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid parser config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}, nil
}

// Result is everything one parse produced
type Result struct {
	Creature     *creature.Creature
	Segmentation *Segmentation
	Format       creature.Format
}

// ParseText splits text into lines and parses them
func (p *Parser) ParseText(text string) (*Result, error) {
	return p.Parse(SplitLines(text))
}

// Parse extracts a creature from statblock lines. The first non-empty line
// is the name. The only error is input without any non-empty line.
func (p *Parser) Parse(lines []string) (*Result, error) {
	seg := Segment(lines)
	if seg.Name == "" {
		return nil, errors.InvalidArgument(errNoLines)
	}

	for _, l := range seg.Unclassified {
		p.logger.Warn("unclassified statblock line",
			"name", seg.Name,
			"line_index", l.Index,
			"line", l.Text)
	}

	b := &builder{
		c:      &creature.Creature{Name: seg.Name},
		logger: p.logger,
	}
	for _, id := range seg.Order {
		if extract, ok := extractors[id]; ok {
			extract(b, seg.Blocks[id])
		}
	}
	collectSpellcasting(b.c)

	p.logger.Debug("parsed statblock",
		"name", seg.Name,
		"format", seg.Format,
		"blocks", len(seg.Order),
		"ignored", len(seg.Ignored),
		"unclassified", len(seg.Unclassified))

	return &Result{
		Creature:     b.c,
		Segmentation: seg,
		Format:       seg.Format,
	}, nil
}

// builder is the record under construction for a single parse
type builder struct {
	c      *creature.Creature
	logger *slog.Logger
}

// extractor fills record fields from one block's lines
type extractor func(b *builder, lines []string)

// extractors maps every block that carries data to its extractor. The
// proficiency bonus block is ignored by the segmenter and has none.
var extractors = map[patterns.BlockID]extractor{
	patterns.BlockAbilities:             extractAbilities,
	patterns.BlockActions:               extractActions,
	patterns.BlockArmor:                 extractArmor,
	patterns.BlockBonusActions:          extractBonusActions,
	patterns.BlockChallenge:             extractChallenge,
	patterns.BlockConditionImmunities:   extractConditionImmunities,
	patterns.BlockDamageImmunities:      extractDamageImmunities,
	patterns.BlockDamageResistances:     extractDamageResistances,
	patterns.BlockDamageVulnerabilities: extractDamageVulnerabilities,
	patterns.BlockFeatures:              extractFeatures,
	patterns.BlockHealth:                extractHealth,
	patterns.BlockInitiative:            extractInitiative,
	patterns.BlockLairActions:           extractLairActions,
	patterns.BlockLanguages:             extractLanguages,
	patterns.BlockLegendaryActions:      extractLegendaryActions,
	patterns.BlockMythicActions:         extractMythicActions,
	patterns.BlockRacialDetails:         extractRacialDetails,
	patterns.BlockReactions:             extractReactions,
	patterns.BlockSavingThrows:          extractSavingThrows,
	patterns.BlockSenses:                extractSenses,
	patterns.BlockSkills:                extractSkills,
	patterns.BlockSouls:                 extractSouls,
	patterns.BlockSpeed:                 extractSpeed,
	patterns.BlockTraits:                extractTraits,
	patterns.BlockUtilitySpells:         extractUtilitySpells,
	patterns.BlockVillainActions:        extractVillainActions,
}
