package parser

import (
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

var openers = patterns.BlockPatterns()

// Classify returns the block a line opens, or BlockNone. Patterns are tried
// in registry order and the first match wins.
func Classify(line string) patterns.BlockID {
	line = strings.TrimSpace(line)
	if line == "" {
		return patterns.BlockNone
	}
	for _, bp := range openers {
		if bp.Pattern.MatchString(line) {
			return bp.ID
		}
	}
	return patterns.BlockNone
}

// IsIgnored reports whether a line carries nothing to extract: blanks and
// the proficiency bonus restatement.
func IsIgnored(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(line), "proficiency bonus")
}
