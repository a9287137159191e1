package parser

import (
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

// endsParagraph reports whether a physical line break between cur and next
// also ends a paragraph. Any one of these is enough: next opens a known
// block, cur ends a sentence and next starts a capitalised one, or next
// starts with an entry header. Bullets always start a new paragraph.
func endsParagraph(cur, next string) bool {
	switch {
	case Classify(next) != patterns.BlockNone:
		return true
	case endsWithTerminator(cur) && startsUpper(next):
		return true
	case looksLikeTitledLine(next):
		return true
	case strings.HasPrefix(next, patterns.Bullet):
		return true
	}
	return false
}

// paragraphs merges wrapped physical lines into logical paragraphs
func paragraphs(lines []string) []string {
	var out []string
	var cur string
	for _, l := range lines {
		l = strings.TrimSpace(stripParagraphs(l))
		if l == "" {
			continue
		}
		if cur != "" && endsParagraph(cur, l) {
			out = append(out, cur)
			cur = ""
		}
		cur = joinText(cur, l)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// isolateSpells pulls spell passages out of the paragraph stream. A passage
// starts at a paragraph mentioning spellcasting and ends before the next
// paragraph that opens with an entry header.
func isolateSpells(paras []string) (plain, spells []string) {
	inSpell := false
	for i, p := range paras {
		if !inSpell {
			inSpell = patterns.SpellcastingKeyword.MatchString(p)
		}
		if !inSpell {
			plain = append(plain, p)
			continue
		}

		if strings.EqualFold(p, "spellcasting") || strings.EqualFold(p, "innate spellcasting") {
			p += "."
		}
		if i+1 < len(paras) && looksLikeTitledLine(paras[i+1]) {
			p = terminate(strings.TrimRight(p, ":"))
			inSpell = false
		}
		spells = append(spells, p)
	}
	return plain, spells
}

type draftEntry struct {
	raw   string
	title string
	body  string
}

// Reassemble rebuilds the titled entries of a prose block. Sentences that
// precede the first title are collected under DescriptionTitle.
func Reassemble(lines []string) []creature.Entry {
	plain, spells := isolateSpells(paragraphs(lines))
	sentences := append(splitSentences(joinAll(plain)), splitSentences(joinAll(spells))...)

	var drafts []*draftEntry
	prevTitle := false
	for _, s := range sentences {
		if !prevTitle && isTitle(s) {
			drafts = append(drafts, &draftEntry{raw: s, title: stripTerminator(s)})
			prevTitle = true
			continue
		}
		prevTitle = false
		if len(drafts) == 0 {
			drafts = append(drafts, &draftEntry{title: creature.DescriptionTitle})
		}
		last := drafts[len(drafts)-1]
		last.body = joinText(last.body, s)
	}

	return repairDangling(drafts)
}

// repairDangling folds a bodiless entry back into the entry before it as
// trailing prose. The first entry keeps its title even when bodiless.
func repairDangling(drafts []*draftEntry) []creature.Entry {
	kept := make([]*draftEntry, 0, len(drafts))
	for i, d := range drafts {
		if i > 0 && d.body == "" && len(kept) > 0 {
			prev := kept[len(kept)-1]
			prev.body = joinText(prev.body, d.raw)
			continue
		}
		kept = append(kept, d)
	}

	entries := make([]creature.Entry, len(kept))
	for i, d := range kept {
		entries[i] = creature.Entry{Title: d.title, Body: formatBody(d.body)}
	}
	return entries
}
