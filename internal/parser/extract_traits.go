package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

// traitLabels are stripped from the front of damage and condition blocks
var traitLabels = []string{
	"damage immunities", "damage resistances", "damage vulnerabilities",
	"condition immunities", "immunities", "resistances", "vulnerabilities",
}

// listGlue is what may sit between keywords of a plain list
var listGlue = map[string]bool{"and": true, "or": true, "&": true}

func extractDamageResistances(b *builder, lines []string) {
	b.c.DamageResistances = splitTraits(lines, patterns.DamageTypes)
}

func extractDamageImmunities(b *builder, lines []string) {
	b.c.DamageImmunities = splitTraits(lines, patterns.DamageTypes)
}

func extractDamageVulnerabilities(b *builder, lines []string) {
	b.c.DamageVulnerabilities = splitTraits(lines, patterns.DamageTypes)
}

func extractConditionImmunities(b *builder, lines []string) {
	b.c.ConditionImmunities = splitTraits(lines, patterns.ConditionTypes)
}

// splitTraits separates a clause into vocabulary keywords and free text.
// The text before the first ";" is the primary list; everything after it is
// kept verbatim as custom text. A primary list holding anything besides
// keywords and list glue ("from nonmagical attacks", "except ...") is a
// qualified clause and is kept whole as custom text.
func splitTraits(lines []string, vocabulary *regexp.Regexp) *creature.TraitSet {
	clause := strings.TrimSpace(strings.TrimSuffix(stripLabel(joinAll(lines), traitLabels...), "."))
	if clause == "" || clause == "—" || clause == "-" {
		return nil
	}

	primary, rest, _ := strings.Cut(clause, ";")
	primary, rest = strings.TrimSpace(primary), strings.TrimSpace(rest)

	set := &creature.TraitSet{}
	var custom []string
	known, qualified := knownKeywords(primary, vocabulary)
	if qualified {
		custom = append(custom, primary)
	} else {
		set.Known = known
	}
	if rest != "" {
		custom = append(custom, rest)
	}
	set.Custom = strings.Join(custom, "; ")

	if set.IsEmpty() {
		set.Custom = clause
	}
	return set
}

// knownKeywords returns the vocabulary keywords in text and whether any
// other words remain once keywords and list punctuation are removed.
func knownKeywords(text string, vocabulary *regexp.Regexp) ([]string, bool) {
	var known []string
	seen := make(map[string]bool)
	for _, k := range vocabulary.FindAllString(text, -1) {
		k = strings.ToLower(k)
		if !seen[k] {
			seen[k] = true
			known = append(known, k)
		}
	}

	residue := strings.ReplaceAll(vocabulary.ReplaceAllString(text, " "), ",", " ")
	for _, word := range strings.Fields(residue) {
		if !listGlue[strings.ToLower(word)] {
			return known, true
		}
	}
	return known, false
}
