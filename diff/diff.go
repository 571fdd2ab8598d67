// Package diff classifies a candidate locale's terms against the
// English baseline and aggregates completion results.
package diff

import (
	"sort"

	"github.com/POBrien333/csl-translation-status/term"
)

// Term is one untranslated baseline entry: the key plus the English
// value the locale still falls back to.
type Term struct {
	Key   term.Key
	Value term.Value
}

// Result holds the completion outcome for one locale. It is built once
// by Compare and never mutated afterwards.
type Result struct {
	Code         string
	DisplayName  string
	Translated   int
	Untranslated int
	// Percentage is completion against the baseline term count, 0-100.
	Percentage float64
	// UntranslatedTerms lists untranslated entries in baseline order.
	UntranslatedTerms []Term
}

// Total returns the baseline term count the locale was compared against.
func (r Result) Total() int {
	return r.Translated + r.Untranslated
}

// Compare walks the baseline in its own order and classifies each key.
//
// A term counts as untranslated when the candidate never overrode the
// English default: either its canonical value equals the baseline's, or
// the key is missing from the candidate entirely. The missing-key rule
// matches the catalog origin, where an empty msgstr means untranslated;
// absence is detected through the lookup result, never through a
// sentinel string, so a real English term reading "None" compares like
// any other value.
func Compare(baseline, candidate *term.Set, code, displayName string) Result {
	res := Result{Code: code, DisplayName: displayName}

	for _, key := range baseline.Keys() {
		base, _ := baseline.Get(key)
		cand, ok := candidate.Get(key)
		if !ok || cand.Canonical() == base.Canonical() {
			res.Untranslated++
			res.UntranslatedTerms = append(res.UntranslatedTerms, Term{Key: key, Value: base})
			continue
		}
		res.Translated++
	}

	if total := baseline.Len(); total > 0 {
		res.Percentage = float64(total-res.Untranslated) / float64(total) * 100
	}
	return res
}

// Sort orders results by completion percentage descending, in place.
// The sort is stable, so ties keep their fetch order; re-sorting a
// sorted slice is a no-op.
func Sort(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})
}
