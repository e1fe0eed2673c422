package absa

import "github.com/jamesainslie/go-absa/annotation"

// MatchKind distinguishes exact boundary coincidence from positional overlap.
type MatchKind int

const (
	// MatchFull means the predicted span exactly coincides with a gold
	// span's boundaries.
	MatchFull MatchKind = iota

	// MatchPartial means the predicted span overlaps a gold span under
	// the positional tie-break policy without exact coincidence.
	MatchPartial
)

// String returns the kind's display name.
func (k MatchKind) String() string {
	switch k {
	case MatchFull:
		return "full"
	case MatchPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Match pairs a predicted span with the gold span it matched.
type Match struct {
	Kind MatchKind
	Gold annotation.Span
	Pred annotation.Span
}

// classify evaluates one prediction against a document's gold spans and
// returns the emitted matches in emission order.
//
// The policy, in order:
//
//  1. Exact-start probe: if a gold span shares the prediction's start
//     offset (duplicates resolve to the first in file order) and its end
//     coincides too, that is a full match and classification stops.
//
//  2. Ordered overlap scan over the gold spans. For each span s:
//
//     - pred.Start <= s.Start: resolve g, the first span with s's start
//     offset. An exact end hit on g emits a partial match; with
//     multiPartial set the scan then moves on to the next s, so one
//     prediction can accumulate several partial matches. Otherwise
//     search forward from g for the first span e whose end encloses the
//     prediction's end (s.Start <= pred.End <= e.End); a hit emits a
//     partial match against e and ends the scan.
//
//     - pred.Start > s.Start: resolve g the same way; if g's end falls
//     inside the prediction (pred.Start < g.End <= pred.End) emit a
//     partial match and end the scan.
//
//  3. Nothing emitted means no match.
func (s *Scorer) classify(pred annotation.Span, doc *annotation.Document) []Match {
	spans := doc.Spans()

	if i, ok := doc.FirstWithStart(pred.Start); ok && spans[i].End == pred.End {
		return []Match{{Kind: MatchFull, Gold: spans[i], Pred: pred}}
	}

	var matches []Match
	for _, cur := range spans {
		// cur is in the document, so the lookup cannot miss.
		i, _ := doc.FirstWithStart(cur.Start)
		g := spans[i]

		if pred.Start <= cur.Start {
			if g.End == pred.End {
				matches = append(matches, Match{Kind: MatchPartial, Gold: g, Pred: pred})
				if s.multiPartial {
					continue
				}
				return matches
			}
			for _, e := range spans[i:] {
				if cur.Start <= pred.End && pred.End <= e.End {
					matches = append(matches, Match{Kind: MatchPartial, Gold: e, Pred: pred})
					return matches
				}
			}
		} else if pred.Start < g.End && g.End <= pred.End {
			matches = append(matches, Match{Kind: MatchPartial, Gold: g, Pred: pred})
			return matches
		}
	}

	return matches
}
