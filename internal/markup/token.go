// Package markup implements the token model for sentences carrying inline math markers.
package markup

import "strings"

// Marker literals. Matched exactly and case-sensitively.
const (
	OpenTag  = "<MATH>"
	CloseTag = "</MATH>"
)

// Kind identifies what a token represents.
type Kind int

const (
	Word Kind = iota
	Whitespace
	OpenMarker
	CloseMarker
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Whitespace:
		return "Whitespace"
	case OpenMarker:
		return "OpenMarker"
	case CloseMarker:
		return "CloseMarker"
	}
	return "Unknown"
}

// Token is an atomic unit of a sentence. Two tokens are equal when kind and text match.
type Token struct {
	Kind Kind
	Text string
}

// IsMarker reports whether the token is one of the two marker tags.
func (t Token) IsMarker() bool {
	return t.Kind == OpenMarker || t.Kind == CloseMarker
}

// Sequence is the ordered token list of exactly one sentence.
type Sequence []Token

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Concat joins the token texts without any separator or normalization.
func (s Sequence) Concat() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Positions returns the indices of every token of the given kind, in order of appearance.
func (s Sequence) Positions(kind Kind) []int {
	var idx []int
	for i, t := range s {
		if t.Kind == kind {
			idx = append(idx, i)
		}
	}
	return idx
}

// MarkerCount returns the number of open and close markers in the sequence.
func (s Sequence) MarkerCount() int {
	n := 0
	for _, t := range s {
		if t.IsMarker() {
			n++
		}
	}
	return n
}

// HasMarker reports whether a sentence string contains either marker literal.
func HasMarker(sentence string) bool {
	return strings.Contains(sentence, OpenTag) || strings.Contains(sentence, CloseTag)
}
