package parser

import (
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

func extractFeatures(b *builder, lines []string) {
	b.c.Features = append(b.c.Features, annotate(Reassemble(lines))...)
	for _, e := range b.c.Features {
		if m, ok := patterns.Named(patterns.LegendaryResistance, e.Title); ok {
			if n, ok := patterns.Atoi(m["count"]); ok {
				b.c.LegendaryResistances = n
			}
		}
	}
}

func extractActions(b *builder, lines []string) {
	b.c.Actions = annotate(Reassemble(lines[1:]))
}

func extractBonusActions(b *builder, lines []string) {
	b.c.BonusActions = annotate(Reassemble(lines[1:]))
}

func extractReactions(b *builder, lines []string) {
	b.c.Reactions = annotate(Reassemble(lines[1:]))
}

func extractLegendaryActions(b *builder, lines []string) {
	b.c.LegendaryActions = annotate(Reassemble(lines[1:]))
	if m, ok := patterns.Named(patterns.LegendaryCount, strings.Join(lines, " ")); ok {
		b.c.LegendaryActionCount, _ = patterns.Atoi(m["count"])
	}
}

func extractLairActions(b *builder, lines []string) {
	b.c.LairActions = Reassemble(lines[1:])
	if m, ok := patterns.Named(patterns.LairInitiative, strings.Join(lines, " ")); ok {
		b.c.LairInitiative, _ = patterns.Atoi(m["count"])
	}
}

func extractMythicActions(b *builder, lines []string) {
	b.c.MythicActions = annotate(Reassemble(lines[1:]))
}

func extractUtilitySpells(b *builder, lines []string) {
	b.c.UtilitySpells = Reassemble(lines[1:])
}

func extractVillainActions(b *builder, lines []string) {
	b.c.VillainActions = annotate(villainEntries(lines[1:]))
}

// extractTraits handles an explicit "Traits" heading, which holds the same
// entries the features block does.
func extractTraits(b *builder, lines []string) {
	extractFeatures(b, lines[1:])
}

// villainEntries scans "Action N: Title." headers in a single pass. Prose
// before the first header becomes a Description entry.
func villainEntries(lines []string) []creature.Entry {
	var drafts []*draftEntry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := patterns.VillainActionHeader.FindStringSubmatchIndex(line); m != nil {
			number := line[m[2]:m[3]]
			title := strings.TrimRight(line[m[4]:m[5]], ".!?")
			drafts = append(drafts, &draftEntry{
				title: "Action " + number + ": " + strings.TrimSpace(title),
				body:  strings.TrimSpace(line[m[1]:]),
			})
			continue
		}
		if len(drafts) == 0 {
			drafts = append(drafts, &draftEntry{title: creature.DescriptionTitle})
		}
		last := drafts[len(drafts)-1]
		last.body = joinText(last.body, line)
	}

	entries := make([]creature.Entry, len(drafts))
	for i, d := range drafts {
		entries[i] = creature.Entry{Title: d.title, Body: formatBody(d.body)}
	}
	return entries
}

// annotate attaches recognized mechanics to each entry
func annotate(entries []creature.Entry) []creature.Entry {
	for i := range entries {
		entries[i].Details = entryDetails(entries[i])
	}
	return entries
}

// entryDetails reads uses, costs and attack mechanics out of an entry.
// It returns nil when nothing was recognized.
func entryDetails(e creature.Entry) *creature.Details {
	d := &creature.Details{}
	found := false
	set := func(dst *int, key string, m map[string]string, ok bool) {
		if !ok {
			return
		}
		if v, ok := patterns.Atoi(m[key]); ok {
			*dst = v
			found = true
		}
	}

	body := stripParagraphs(e.Body)

	m, ok := patterns.Named(patterns.Recharge, e.Title)
	set(&d.Recharge, "recharge", m, ok)
	m, ok = patterns.Named(patterns.PerDay, e.Title)
	set(&d.PerDay, "perday", m, ok)
	m, ok = patterns.Named(patterns.ActionCost, e.Title)
	set(&d.Cost, "cost", m, ok)
	m, ok = patterns.Named(patterns.Reach, body)
	set(&d.Reach, "reach", m, ok)
	m, ok = patterns.Named(patterns.Range, body)
	set(&d.Range, "range", m, ok)
	set(&d.LongRange, "long", m, ok && m["long"] != "")

	if m, ok := patterns.Named(patterns.AttackBonus, body); ok {
		if v, ok := patterns.Atoi(m["bonus"]); ok {
			d.AttackBonus = &v
			found = true
		}
	}
	if m, ok := patterns.Named(patterns.SavingThrowDC, body); ok {
		if v, ok := patterns.Atoi(m["dc"]); ok {
			d.SaveDC = v
			d.SaveAbility = strings.ToLower(m["ability"])[:3]
			found = true
		}
	}
	for _, m := range patterns.NamedAll(patterns.DamageRoll, body) {
		v, ok := patterns.Atoi(m["value"])
		if !ok {
			continue
		}
		d.Damage = append(d.Damage, creature.DamageRoll{
			Value:   v,
			Formula: strings.NewReplacer("−", "-", "–", "-").Replace(m["formula"]),
			Type:    strings.ToLower(m["type"]),
		})
		found = true
	}

	if !found {
		return nil
	}
	return d
}
