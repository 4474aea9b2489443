// Package fidelity measures how far markers drifted between an original and an edited
// sentence set.
package fidelity

import (
	"github.com/bethropolis/mathtag/internal/markup"
)

// SentenceReport is the breakdown for one index-aligned sentence pair.
type SentenceReport struct {
	Index    int
	Total    int // Markers in the original sentence
	Moved    int // Original markers whose ordinal counterpart moved or vanished
	Removed  int // Subset of Moved with no counterpart at all
	Original string
	Edited   string
}

// Report summarizes marker drift across a whole set.
type Report struct {
	TotalMarkers   int
	MovedMarkers   int
	RemovedMarkers int
	Accuracy       float64
	Sentences      []SentenceReport
}

// Unchanged reports whether no marker moved.
func (r Report) Unchanged() bool {
	return r.MovedMarkers == 0
}

// Score compares original and edited sentences pairwise by index.
//
// Both sides are normalized first so pure spacing differences are not counted. For each
// marker kind the j-th original marker is compared with the j-th edited marker of the same
// kind by token position. Missing edited sentences compare as empty.
func Score(original, edited []string) Report {
	var r Report
	r.Sentences = make([]SentenceReport, 0, len(original))

	for i, orig := range original {
		var ed string
		if i < len(edited) {
			ed = edited[i]
		}
		sr := scoreSentence(i, orig, ed)
		r.TotalMarkers += sr.Total
		r.MovedMarkers += sr.Moved
		r.RemovedMarkers += sr.Removed
		r.Sentences = append(r.Sentences, sr)
	}

	r.Accuracy = accuracy(r.TotalMarkers, r.MovedMarkers)
	return r
}

func scoreSentence(index int, original, edited string) SentenceReport {
	sr := SentenceReport{
		Index:    index,
		Original: markup.Normalize(original),
		Edited:   markup.Normalize(edited),
	}
	origSeq := markup.Tokenize(sr.Original)
	editSeq := markup.Tokenize(sr.Edited)

	for _, kind := range []markup.Kind{markup.OpenMarker, markup.CloseMarker} {
		before := origSeq.Positions(kind)
		after := editSeq.Positions(kind)
		sr.Total += len(before)
		for j, pos := range before {
			switch {
			case j >= len(after):
				sr.Moved++
				sr.Removed++
			case after[j] != pos:
				sr.Moved++
			}
		}
	}
	return sr
}

func accuracy(total, moved int) float64 {
	if total == 0 {
		return 1
	}
	return float64(total-moved) / float64(total)
}
