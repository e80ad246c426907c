package richtext

import (
	"strings"
	"unicode/utf8"
)

const DefaultWordsPerMinute = 250

// PlainText flattens every text leaf of the tree. Text inside one block is
// joined as-is so marks splitting a word do not split it; blocks are
// separated by a single space.
func PlainText(n Node) string {
	var b strings.Builder
	writeText(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeText(b *strings.Builder, n Node) {
	switch n.Type {
	case TypeText:
		b.WriteString(n.Text)
		return
	case TypeHardBreak:
		b.WriteByte(' ')
		return
	}

	// Leaves that are not declared as text still count when they carry text.
	if n.Text != "" {
		b.WriteString(n.Text)
	}

	for _, child := range n.Content {
		writeText(b, child)
	}

	if n.Type != "" && n.Type != TypeText {
		b.WriteByte(' ')
	}
}

func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadingTimeText estimates the minutes needed to read text at wpm words per
// minute, rounding up. A non-positive rate falls back to the default.
func ReadingTimeText(text string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}

	words := WordCount(text)
	if words == 0 {
		return 0
	}

	return (words + wpm - 1) / wpm
}

func ReadingTime(n Node, wpm int) int {
	return ReadingTimeText(PlainText(n), wpm)
}

// Excerpt returns at most maxRunes of the document's plain text, cut on a
// word boundary.
func Excerpt(n Node, maxRunes int) string {
	text := PlainText(n)
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,.;:") + "..."
}
