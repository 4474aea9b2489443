package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// trailingPunct binds directly to a preceding close marker.
const trailingPunct = ",.;:!?"

// Serialize reassembles a token sequence into a display sentence.
//
// Markers are separated from neighbouring text by one space, except that a close marker
// sits directly against trailing punctuation. Whitespace runs collapse to one space and
// the result is trimmed.
func Serialize(seq Sequence) string {
	s := seq.Concat()
	var out strings.Builder
	out.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], OpenTag):
			padBefore(&out)
			out.WriteString(OpenTag)
			i += len(OpenTag)
			if i < len(s) && !spaceAt(s, i) {
				out.WriteByte(' ')
			}
		case strings.HasPrefix(s[i:], CloseTag):
			padBefore(&out)
			out.WriteString(CloseTag)
			i += len(CloseTag)
			j := skipSpace(s, i)
			if j < len(s) && strings.IndexByte(trailingPunct, s[j]) >= 0 {
				i = j
			} else if i < len(s) && !spaceAt(s, i) {
				out.WriteByte(' ')
			}
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			out.WriteString(s[i : i+size])
			i += size
		}
	}
	return strings.Join(strings.Fields(out.String()), " ")
}

// Normalize tokenizes and re-serializes a sentence.
func Normalize(sentence string) string {
	return Serialize(Tokenize(sentence))
}

// padBefore writes a space when the output so far ends in a non-whitespace character.
func padBefore(out *strings.Builder) {
	cur := out.String()
	if cur == "" {
		return
	}
	r, _ := utf8.DecodeLastRuneInString(cur)
	if !unicode.IsSpace(r) {
		out.WriteByte(' ')
	}
}

func spaceAt(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
