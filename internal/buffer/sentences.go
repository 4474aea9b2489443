package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/bethropolis/mathtag/internal/markup"
)

// NormalizeText converts line endings to LF and the text to Unicode NFC.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

// SplitSentences breaks text after '.', '!' or '?' wherever a whitespace run follows.
// Sentences are trimmed and empty ones dropped.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}
		if i == end {
			continue
		}
		out = appendSentence(out, text[start:end])
		start = i
	}
	return appendSentence(out, text[start:])
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

// FilterMarked keeps the sentences that contain an open marker.
func FilterMarked(sentences []string) []string {
	kept := sentences[:0:0]
	for _, s := range sentences {
		if strings.Contains(s, markup.OpenTag) {
			kept = append(kept, s)
		}
	}
	return kept
}
