package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

// formulaRegex matches printed hit dice such as "5d6 + 10" or "2d8 − 1"
var formulaRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\s*([+\-−])\s*(\d+))?$`)

// Roller rolls a printed dice formula
type Roller interface {
	Roll(formula string) (int, error)
}

// ToolkitRoller rolls formulas with rpg-toolkit dice
type ToolkitRoller struct{}

// NewToolkitRoller returns a roller backed by rpg-toolkit
func NewToolkitRoller() *ToolkitRoller {
	return &ToolkitRoller{}
}

// Formula is a parsed "NdM ± K"
type Formula struct {
	Count    int
	Size     int
	Modifier int
}

// ParseFormula reads a printed hit dice formula
func ParseFormula(formula string) (Formula, error) {
	m := formulaRegex.FindStringSubmatch(strings.TrimSpace(formula))
	if m == nil {
		return Formula{}, errors.InvalidArgumentf("invalid dice formula: %q", formula)
	}

	f := Formula{}
	f.Count, _ = strconv.Atoi(m[1])
	f.Size, _ = strconv.Atoi(m[2])
	if m[4] != "" {
		f.Modifier, _ = strconv.Atoi(m[4])
		if m[3] != "+" {
			f.Modifier = -f.Modifier
		}
	}
	if f.Count <= 0 || f.Size <= 0 {
		return Formula{}, errors.InvalidArgumentf("dice count and size must be positive: %q", formula)
	}
	return f, nil
}

// Roll implements Roller. The total never drops below 1.
func (r *ToolkitRoller) Roll(formula string) (int, error) {
	f, err := ParseFormula(formula)
	if err != nil {
		return 0, err
	}

	roll, err := dice.NewRoll(f.Count, f.Size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create dice roll")
	}

	return max(roll.GetValue()+f.Modifier, 1), nil
}
