package parser

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

// numberCommaSentinel stands in for the comma of "1,000" while a list is split
const numberCommaSentinel = "\x1f"

// titleCase builds a fresh caser per call; casers are stateful and may not
// be shared between goroutines.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func extractRacialDetails(b *builder, lines []string) {
	m, ok := patterns.Named(patterns.RacialDetails, strings.Join(lines, " "))
	if !ok {
		return
	}

	details := &creature.RacialDetails{
		Size:      strings.ToLower(m["size"]),
		SwarmSize: strings.ToLower(m["swarmsize"]),
		Race:      strings.TrimSpace(m["race"]),
		Alignment: strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m["alignment"]), ".")),
	}
	if keyword, ok := creature.TypeKeyword(m["type"]); ok {
		details.Type = keyword
	} else {
		details.CustomType = titleCase(m["type"])
	}
	b.c.Racial = details
}

func extractArmor(b *builder, lines []string) {
	m, ok := patterns.Named(patterns.ArmorDetails, joinAll(lines))
	if !ok {
		return
	}
	class, ok := patterns.Atoi(m["ac"])
	if !ok {
		return
	}

	armor := &creature.Armor{Class: class}
	for _, item := range strings.Split(m["armortype"], ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "":
		case strings.EqualFold(item, "natural armor"):
			armor.Natural = true
		default:
			armor.Types = append(armor.Types, item)
		}
	}
	b.c.Armor = armor
}

// extractRoll reads "27 (5d6 + 10)" shaped values
func extractRoll(lines []string) *creature.Roll {
	m, ok := patterns.Named(patterns.RollDetails, joinAll(lines))
	if !ok {
		return nil
	}
	value, ok := patterns.Atoi(m["value"])
	if !ok {
		return nil
	}
	formula := strings.NewReplacer("−", "-", "–", "-").Replace(m["formula"])
	return &creature.Roll{Value: value, Formula: formula}
}

func extractHealth(b *builder, lines []string) {
	b.c.Health = extractRoll(lines)
}

func extractSouls(b *builder, lines []string) {
	b.c.Souls = extractRoll(lines)
}

func extractSpeed(b *builder, lines []string) {
	text := joinAll(lines)
	for _, m := range patterns.NamedAll(patterns.SpeedDetails, text) {
		value, ok := patterns.Atoi(m["value"])
		if !ok {
			continue
		}
		b.c.Speed = append(b.c.Speed, creature.NamedValue{Name: strings.ToLower(m["name"]), Value: value})
	}
	if strings.Contains(strings.ToLower(text), creature.SpeedHover) {
		b.c.Speed = append(b.c.Speed, creature.NamedValue{Name: creature.SpeedHover})
	}
}

func extractInitiative(b *builder, lines []string) {
	m, ok := patterns.Named(patterns.InitiativeDetails, joinAll(lines))
	if !ok {
		return
	}
	if mod, ok := patterns.Atoi(m["modifier"]); ok {
		b.c.Initiative = &mod
	}
}

// extractAbilities pairs ability names with scores in discovery order.
// Abbreviated statblocks print modifiers only ("Str +2"); those become
// 10 + 2×modifier.
func extractAbilities(b *builder, lines []string) {
	text := strings.Join(lines, " ")

	names := patterns.AbilityNames.FindAllString(text, -1)
	var scores []int
	for _, m := range patterns.NamedAll(patterns.AbilityValues, text) {
		if v, ok := patterns.Atoi(m["base"]); ok {
			scores = append(scores, v)
		}
	}

	if len(scores) == 0 {
		names = names[:0]
		for _, m := range patterns.NamedAll(patterns.AbilityModifiers, text) {
			mod, ok := patterns.Atoi(m["modifier"])
			if !ok {
				continue
			}
			names = append(names, m["name"])
			scores = append(scores, 10+2*mod)
		}
	}

	n := min(len(names), len(scores))
	if len(names) != len(scores) || n != len(creature.Abilities) {
		b.logger.Warn("ability names and scores do not pair up",
			"name", b.c.Name,
			"names", len(names),
			"scores", len(scores))
	}
	for i := 0; i < n; i++ {
		b.c.Abilities = append(b.c.Abilities, creature.NamedValue{
			Name:  strings.ToLower(names[i]),
			Value: scores[i],
		})
	}
}

func extractSavingThrows(b *builder, lines []string) {
	seen := make(map[string]bool)
	for _, m := range patterns.NamedAll(patterns.AbilitySaves, joinAll(lines)) {
		name := strings.ToLower(m["name"])
		if seen[name] {
			continue
		}
		seen[name] = true
		b.c.SavingThrows = append(b.c.SavingThrows, name)
	}
}

// extractSkills keeps the printed total, not a proficiency flag
func extractSkills(b *builder, lines []string) {
	for _, m := range patterns.NamedAll(patterns.SkillDetails, joinAll(lines)) {
		mod, ok := patterns.Atoi(m["modifier"])
		if !ok {
			continue
		}
		b.c.Skills = append(b.c.Skills, creature.NamedValue{Name: strings.ToLower(m["name"]), Value: mod})
	}
}

func extractSenses(b *builder, lines []string) {
	text := stripLabel(joinAll(lines), "senses")

	var special []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m, ok := patterns.Named(patterns.SenseDetails, part); ok {
			if v, ok := patterns.Atoi(m["value"]); ok {
				b.c.Senses = append(b.c.Senses, creature.NamedValue{Name: strings.ToLower(m["name"]), Value: v})
				continue
			}
		}
		if m, ok := patterns.Named(patterns.PassivePerception, part); ok {
			if v, ok := patterns.Atoi(m["value"]); ok {
				b.c.Senses = append(b.c.Senses, creature.NamedValue{Name: creature.PassivePerception, Value: v})
				continue
			}
		}
		special = append(special, part)
	}
	b.c.SpecialSenses = strings.Join(special, ", ")
}

func extractLanguages(b *builder, lines []string) {
	text := strings.TrimSuffix(stripLabel(joinAll(lines), "languages"), ".")
	if text == "" || text == "—" || text == "-" || strings.EqualFold(text, "none") {
		return
	}

	protected := patterns.NumberComma.ReplaceAllString(text, "${1}"+numberCommaSentinel+"${2}")
	langs := &creature.Languages{}
	seen := make(map[string]bool)
	for _, part := range strings.FieldsFunc(protected, func(r rune) bool { return r == ',' || r == ';' }) {
		part = strings.TrimSpace(strings.ReplaceAll(part, numberCommaSentinel, ","))
		part = strings.TrimSpace(strings.TrimPrefix(part, "and "))
		if part == "" {
			continue
		}
		if keyword, ok := creature.LanguageKeyword(part); ok {
			if !seen[keyword] {
				seen[keyword] = true
				langs.Known = append(langs.Known, keyword)
			}
			continue
		}
		langs.Unknown = append(langs.Unknown, part)
	}
	if len(langs.Known) > 0 || len(langs.Unknown) > 0 {
		b.c.Languages = langs
	}
}

func extractChallenge(b *builder, lines []string) {
	text := strings.Join(lines, " ")
	challenge := &creature.Challenge{}
	found := false

	rated := stripLabel(text, "challenge rating", "challenge", "cr")
	if m, ok := patterns.Named(patterns.ChallengeRating, rated); ok {
		if rating, ok := parseRating(m["cr"]); ok {
			challenge.Rating = rating
			found = true
		}
	}
	if m, ok := patterns.Named(patterns.ChallengeXP, text); ok {
		raw := m["xp"]
		if raw == "" {
			raw = m["xpafter"]
		}
		if xp, err := strconv.Atoi(strings.ReplaceAll(raw, ",", "")); err == nil {
			challenge.XP = xp
			found = true
		}
	}
	if m, ok := patterns.Named(patterns.ChallengeRole, text); ok && !strings.EqualFold(m["role"], "xp") {
		challenge.Role = m["role"]
	}

	if found {
		b.c.Challenge = challenge
	}
}

// parseRating reads "11", "½" and "1/4". A zero denominator is malformed.
func parseRating(s string) (float64, bool) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "½" {
		return 0.5, true
	}
	num, den, isFraction := strings.Cut(s, "/")
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	if !isFraction {
		return float64(n), true
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0, false
	}
	return float64(n) / float64(d), true
}
