package parser

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

var (
	spellAnnotation = regexp.MustCompile(`\s*\([^)]*\)`)
	spellGlyph      = regexp.MustCompile(`\s+(?:[A-Z]|[+*†‡])$`)
	sentenceBreak   = regexp.MustCompile(`[.!]\s+[A-Z]`)
)

// collectSpellcasting fills the three spellcasting groups from entries
// already extracted into prose blocks.
func collectSpellcasting(c *creature.Creature) {
	for _, block := range [][]creature.Entry{c.Features, c.Actions, c.BonusActions} {
		for _, e := range block {
			switch {
			case patterns.InnateKeyword.MatchString(e.Title):
				if c.InnateSpellcasting == nil {
					c.InnateSpellcasting = parseSpellcasting(e.Title, e.Body)
				}
			case patterns.SpellcastingKeyword.MatchString(e.Title):
				if c.Spellcasting == nil {
					c.Spellcasting = parseSpellcasting(e.Title, e.Body)
				}
			}
		}
	}

	if len(c.UtilitySpells) > 0 {
		bodies := make([]string, 0, len(c.UtilitySpells))
		for _, e := range c.UtilitySpells {
			bodies = append(bodies, stripParagraphs(e.Body))
		}
		c.UtilitySpellcasting = parseSpellcasting("", strings.Join(bodies, " "))
	}
}

// parseSpellcasting splits a spell passage into its leading prose and the
// "header: spell, spell" groups that follow.
func parseSpellcasting(title, body string) *creature.Spellcasting {
	text := stripParagraphs(body)
	sc := &creature.Spellcasting{}

	headers := patterns.SpellHeader.FindAllStringIndex(text, -1)
	if len(headers) == 0 {
		sc.Description = text
		if m, ok := patterns.Named(patterns.InnateSingleSpell, text); ok {
			sc.Groups = append(sc.Groups, singleSpellGroup(title, m["spell"]))
		}
	} else {
		sc.Description = strings.TrimSpace(text[:headers[0][0]])
		for i, loc := range headers {
			end := len(text)
			if i+1 < len(headers) {
				end = headers[i+1][0]
			}
			header := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text[loc[0]:loc[1]]), ":"))
			sc.Groups = append(sc.Groups, spellGroup(header, text[loc[1]:end]))
		}
	}

	if m, ok := patterns.Named(patterns.SpellcasterLevel, text); ok {
		sc.Level, _ = patterns.Atoi(m["level"])
	}
	if m, ok := patterns.Named(patterns.SpellSaveDC, text); ok {
		sc.SaveDC, _ = patterns.Atoi(m["savedc"])
	}
	if m, ok := patterns.Named(patterns.SpellAbility, text); ok {
		ability := m["ability"]
		if ability == "" {
			ability = m["ability2"]
		}
		if len(ability) >= 3 {
			sc.Ability = strings.ToLower(ability[:3])
		}
	}
	return sc
}

func spellGroup(header, list string) creature.SpellGroup {
	if loc := sentenceBreak.FindStringIndex(list); loc != nil {
		list = list[:loc[0]]
	}

	group := creature.SpellGroup{
		Header: header,
		Spells: splitSpells(list),
		AtWill: patterns.SpellAtWill.MatchString(header),
	}
	if m, ok := patterns.Named(patterns.SpellSlots, header); ok {
		group.Slots, _ = patterns.Atoi(m["slots"])
	}
	if m, ok := patterns.Named(patterns.PerDay, header); ok {
		group.PerDay, _ = patterns.Atoi(m["perday"])
	}
	return group
}

// singleSpellGroup covers "can innately cast fog cloud," where the title
// carries the uses, as in "Innate Spellcasting (1/Day)".
func singleSpellGroup(title, spell string) creature.SpellGroup {
	group := creature.SpellGroup{Spells: []string{strings.TrimSpace(spell)}}
	if m, ok := patterns.Named(patterns.PerDay, title); ok {
		group.PerDay, _ = patterns.Atoi(m["perday"])
		group.Header = m["perday"] + "/day"
		return group
	}
	group.Header = "At will"
	group.AtWill = true
	return group
}

// splitSpells splits on commas outside parentheses and cleans each name
func splitSpells(list string) []string {
	var spells []string
	depth, start := 0, 0
	flush := func(end int) {
		name := strings.TrimSpace(list[start:end])
		name = spellAnnotation.ReplaceAllString(name, "")
		name = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(name), ".;"))
		name = strings.TrimSpace(spellGlyph.ReplaceAllString(name, ""))
		name = strings.TrimSpace(strings.TrimPrefix(name, "and "))
		if name != "" {
			spells = append(spells, name)
		}
	}
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(list))
	return spells
}
