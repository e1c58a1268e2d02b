// Package fuzzy picks the closest string among candidates using difflib-style
// similarity ratios.
package fuzzy

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Scorer returns a similarity in [0, 1] between a candidate and the word being matched.
type Scorer func(candidate, word string) float64

// Ratio is the SequenceMatcher similarity 2*M/T computed over runes.
func Ratio(candidate, word string) float64 {
	return difflib.NewMatcher(runes(candidate), runes(word)).Ratio()
}

// ClosestMatch returns the index of the candidate most similar to word whose score is
// at least cutoff. Equal scores resolve to the earliest candidate. ok is false when no
// candidate clears the cutoff.
//
// A nil score uses Ratio, reusing one matcher for word and skipping candidates whose
// cheap upper bounds already fall under the cutoff.
func ClosestMatch(word string, candidates []string, cutoff float64, score Scorer) (index int, ok bool) {
	index = -1
	best := -1.0

	var matcher *difflib.SequenceMatcher
	if score == nil {
		matcher = difflib.NewMatcher(nil, runes(word))
	}

	for i, candidate := range candidates {
		var s float64
		if matcher != nil {
			matcher.SetSeq1(runes(candidate))
			if matcher.RealQuickRatio() < cutoff || matcher.QuickRatio() < cutoff {
				continue
			}
			s = matcher.Ratio()
		} else {
			s = score(candidate, word)
		}

		if s >= cutoff && s > best {
			best = s
			index = i
		}
	}

	return index, index >= 0
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
