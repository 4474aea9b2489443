package fidelity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAreaScenario(t *testing.T) {
	original := []string{"The area <MATH>A=pi r^2</MATH>, approx."}
	edited := []string{"The area A=pi <MATH> r^2 </MATH>, approx."}

	r := Score(original, edited)
	assert.Equal(t, 2, r.TotalMarkers)
	assert.Equal(t, 1, r.MovedMarkers)
	assert.Equal(t, 0, r.RemovedMarkers)
	assert.InDelta(t, 0.5, r.Accuracy, 1e-9)
	require.Len(t, r.Sentences, 1)
	assert.Equal(t, "The area <MATH> A=pi r^2 </MATH>, approx.", r.Sentences[0].Original)
}

func TestScoreIgnoresSpacing(t *testing.T) {
	original := []string{"x<MATH>y</MATH>."}
	edited := []string{"x <MATH> y </MATH>."}

	r := Score(original, edited)
	assert.Equal(t, 2, r.TotalMarkers)
	assert.True(t, r.Unchanged())
	assert.Equal(t, 1.0, r.Accuracy)
}

func TestScoreBoundaries(t *testing.T) {
	testCases := []struct {
		desc     string
		original []string
		edited   []string
		total    int
		moved    int
		removed  int
		accuracy float64
	}{
		{"empty sets", nil, nil, 0, 0, 0, 1},
		{"no markers", []string{"plain text."}, []string{"plain text."}, 0, 0, 0, 1},
		{"identical", []string{"a <MATH>b</MATH> c"}, []string{"a <MATH>b</MATH> c"}, 2, 0, 0, 1},
		{"markers deleted", []string{"a <MATH>b</MATH> c"}, []string{"a b c"}, 2, 2, 2, 0},
		{"edited set shorter", []string{"<MATH>x", "y"}, nil, 1, 1, 1, 0},
		{"extra edited markers ignored", []string{"a b"}, []string{"a <MATH> b"}, 0, 0, 0, 1},
		{
			"both moved",
			[]string{"<MATH> a </MATH> b c"},
			[]string{"a <MATH> b </MATH> c"},
			2, 2, 0, 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r := Score(tc.original, tc.edited)
			assert.Equal(t, tc.total, r.TotalMarkers)
			assert.Equal(t, tc.moved, r.MovedMarkers)
			assert.Equal(t, tc.removed, r.RemovedMarkers)
			assert.InDelta(t, tc.accuracy, r.Accuracy, 1e-9)
			assert.LessOrEqual(t, r.MovedMarkers, r.TotalMarkers)
		})
	}
}

func TestScorePerSentence(t *testing.T) {
	original := []string{"<MATH>a</MATH>.", "b <MATH>c</MATH>."}
	edited := []string{"<MATH>a</MATH>.", "<MATH> b c</MATH>."}

	r := Score(original, edited)
	require.Len(t, r.Sentences, 2)
	assert.Equal(t, 0, r.Sentences[0].Moved)
	assert.Equal(t, 1, r.Sentences[1].Moved)
	assert.Equal(t, 1, r.Sentences[1].Index)
	assert.InDelta(t, 0.75, r.Accuracy, 1e-9)
}
