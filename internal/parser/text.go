package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-statblock/internal/parser/patterns"
)

// spellSaveMarker disqualifies parentheticals such as "(spell save DC 13)"
// from closing a title.
const spellSaveMarker = "(spell save"

// softHyphen is invisible in print but survives copy and paste
const softHyphen = "\u00ad"

// SplitLines breaks pasted text into trimmed lines, dropping blank ones and
// soft hyphens.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, softHyphen, "")
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// joinText appends b to a with a single space, rejoining a word that was
// hyphenated across the line break.
func joinText(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	if strings.HasSuffix(a, "-") && len(a) > 1 {
		prev, _ := utf8.DecodeLastRuneInString(a[:len(a)-1])
		next, _ := utf8.DecodeRuneInString(b)
		if unicode.IsLetter(prev) && unicode.IsLower(next) {
			return a[:len(a)-1] + b
		}
	}
	return a + " " + b
}

// joinAll folds lines together with joinText
func joinAll(lines []string) string {
	var out string
	for _, l := range lines {
		out = joinText(out, l)
	}
	return out
}

// splitSentences cuts text after every "." or "!" that is followed by
// whitespace or the end of the text. A trailing fragment without a
// terminator is closed with a period.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next < len(text) {
			nr, _ := utf8.DecodeRuneInString(text[next:])
			if !unicode.IsSpace(nr) {
				continue
			}
		}
		if s := strings.TrimSpace(text[start:next]); s != "" {
			sentences = append(sentences, s)
		}
		start = next
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, terminate(tail))
	}
	return sentences
}

// firstSentence returns the leading sentence of a line including its
// terminator, or "" when the line never ends a sentence.
func firstSentence(line string) string {
	for i, r := range line {
		if r != '.' && r != '!' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next == len(line) {
			return strings.TrimSpace(line)
		}
		nr, _ := utf8.DecodeRuneInString(line[next:])
		if unicode.IsSpace(nr) {
			return strings.TrimSpace(line[:next])
		}
	}
	return ""
}

// terminate closes text with a period unless it already ends a sentence
func terminate(s string) string {
	if s == "" || strings.ContainsAny(s[len(s)-1:], ".!?:") {
		return s
	}
	return s + "."
}

// stripTerminator drops the final "." or "!" of a title sentence
func stripTerminator(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, ".!"))
}

// isTitle reports whether a single sentence reads as an entry header
func isTitle(sentence string) bool {
	s := strings.TrimSpace(sentence)
	if !patterns.Title.MatchString(s) {
		return false
	}
	return !strings.Contains(strings.ToLower(s), spellSaveMarker)
}

// looksLikeTitledLine reports whether a physical line opens with an entry header
func looksLikeTitledLine(line string) bool {
	return isTitle(firstSentence(line))
}

// endsWithTerminator reports whether s ends a sentence
func endsWithTerminator(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!")
}

// startsUpper reports whether s begins with an upper-case letter
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// stripLabel removes a leading block label such as "Senses" from text
func stripLabel(text string, labels ...string) string {
	lower := strings.ToLower(text)
	for _, label := range labels {
		if strings.HasPrefix(lower, label) {
			return strings.TrimSpace(text[len(label):])
		}
	}
	return strings.TrimSpace(text)
}

// stripParagraphs undoes the <p> wrapping produced by formatBody
func stripParagraphs(s string) string {
	s = strings.ReplaceAll(s, "</p><p>", " ")
	s = strings.ReplaceAll(s, "<p>", "")
	s = strings.ReplaceAll(s, "</p>", "")
	return strings.TrimSpace(s)
}

// formatBody renders bulleted prose as one <p> per paragraph. Text without
// bullets is returned unchanged.
func formatBody(body string) string {
	if !strings.Contains(body, patterns.Bullet) {
		return body
	}
	parts := strings.Split(strings.ReplaceAll(body, patterns.Bullet, "\n"+patterns.Bullet), "\n")
	var b strings.Builder
	for _, p := range parts {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(p)
		b.WriteString("</p>")
	}
	return b.String()
}
