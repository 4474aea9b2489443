package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a sentence into marker, whitespace and word tokens.
// Each whitespace character becomes its own token; runs are not merged here.
func Tokenize(sentence string) Sequence {
	seq := make(Sequence, 0, len(sentence)/2)
	rest := sentence
	for len(rest) > 0 {
		pos, tag := nextTag(rest)
		if pos < 0 {
			seq = appendText(seq, rest)
			break
		}
		seq = appendText(seq, rest[:pos])
		if tag == OpenTag {
			seq = append(seq, Token{Kind: OpenMarker, Text: OpenTag})
		} else {
			seq = append(seq, Token{Kind: CloseMarker, Text: CloseTag})
		}
		rest = rest[pos+len(tag):]
	}
	return seq
}

// nextTag finds the earliest marker literal in s. Returns -1 when none is present.
func nextTag(s string) (int, string) {
	open := strings.Index(s, OpenTag)
	closeAt := strings.Index(s, CloseTag)
	switch {
	case open < 0 && closeAt < 0:
		return -1, ""
	case open < 0:
		return closeAt, CloseTag
	case closeAt < 0 || open < closeAt:
		return open, OpenTag
	default:
		return closeAt, CloseTag
	}
}

// appendText splits a marker-free fragment into maximal word runs and single whitespace characters.
func appendText(seq Sequence, fragment string) Sequence {
	start := -1
	for i, r := range fragment {
		if unicode.IsSpace(r) {
			if start >= 0 {
				seq = append(seq, Token{Kind: Word, Text: fragment[start:i]})
				start = -1
			}
			seq = append(seq, Token{Kind: Whitespace, Text: fragment[i : i+utf8.RuneLen(r)]})
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		seq = append(seq, Token{Kind: Word, Text: fragment[start:]})
	}
	return seq
}
