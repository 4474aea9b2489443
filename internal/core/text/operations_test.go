package text

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/mathtag/internal/markup"
)

const areaSentence = "The area <MATH>A=pi r^2</MATH>, approx."

func texts(seq markup.Sequence) []string {
	out := make([]string, len(seq))
	for i, t := range seq {
		out[i] = t.Text
	}
	return out
}

func TestMoveOpenMarkerRight(t *testing.T) {
	seq := markup.Tokenize(areaSentence)
	require.Equal(t, markup.OpenMarker, seq[4].Kind)

	moved, at, err := Move(seq, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, at)
	assert.Equal(t, markup.OpenMarker, moved[at].Kind)
	assert.Equal(t, "The area A=pi <MATH> r^2 </MATH>, approx.", markup.Serialize(moved))

	// input untouched
	assert.Equal(t, markup.OpenMarker, seq[4].Kind)
}

func TestMoveLeft(t *testing.T) {
	seq := markup.Tokenize("a b <MATH>")
	moved, at, err := Move(seq, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, at)
	assert.Equal(t, "<MATH> a b", markup.Serialize(moved))
}

func TestMoveToEnd(t *testing.T) {
	seq := markup.Tokenize("<MATH> x")
	moved, at, err := Move(seq, 0, len(seq))
	require.NoError(t, err)
	assert.Equal(t, len(seq)-1, at)
	assert.Equal(t, "x <MATH>", markup.Serialize(moved))
}

func TestMoveIsPermutation(t *testing.T) {
	seq := markup.Tokenize("Let <MATH>x</MATH> be  real.")
	for src := 0; src < len(seq); src++ {
		for tgt := 0; tgt <= len(seq); tgt++ {
			if src == tgt {
				continue
			}
			moved, _, err := Move(seq, src, tgt)
			require.NoError(t, err, "src=%d tgt=%d", src, tgt)
			require.Len(t, moved, len(seq))

			before, after := texts(seq), texts(moved)
			sort.Strings(before)
			sort.Strings(after)
			assert.Equal(t, before, after, "src=%d tgt=%d", src, tgt)
		}
	}
}

func TestMoveRejects(t *testing.T) {
	seq := markup.Tokenize("a <MATH> b")

	testCases := []struct {
		desc   string
		source int
		target int
		err    error
	}{
		{"same slot", 2, 2, ErrNoOpMove},
		{"negative source", -1, 0, ErrInvalidIndex},
		{"source past end", len(seq), 0, ErrInvalidIndex},
		{"negative target", 0, -1, ErrInvalidIndex},
		{"target past end", 0, len(seq) + 1, ErrInvalidIndex},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			out, _, err := Move(seq, tc.source, tc.target)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, seq, out)
		})
	}
}

func TestDelete(t *testing.T) {
	seq := markup.Tokenize(areaSentence)

	out, sel, err := Delete(seq, 8)
	require.NoError(t, err)
	assert.Len(t, out, len(seq)-1)
	assert.Equal(t, 7, sel)
	assert.Empty(t, out.Positions(markup.CloseMarker))
	assert.Equal(t, "The area <MATH> A=pi r^2, approx.", markup.Serialize(out))

	out, sel, err = Delete(out, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, sel)
	assert.Equal(t, "The area A=pi r^2, approx.", markup.Serialize(out))
}

func TestDeleteFirstTokenSelectsZero(t *testing.T) {
	out, sel, err := Delete(markup.Tokenize("<MATH>x"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sel)
	assert.Equal(t, "x", markup.Serialize(out))
}

func TestDeleteRejects(t *testing.T) {
	seq := markup.Tokenize("a <MATH> b")

	_, _, err := Delete(seq, 0)
	assert.ErrorIs(t, err, ErrNotMarker)

	_, _, err = Delete(seq, 1)
	assert.ErrorIs(t, err, ErrNotMarker)

	_, _, err = Delete(seq, len(seq))
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, _, err = Delete(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
