// Package layout reconstructs visual rows from positioned text fragments.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/finforge/ledgerline/text"
)

// DefaultYTolerance is the vertical distance within which two fragments are
// considered to sit on the same row. Statement baselines drift by fractions
// of a unit between columns.
const DefaultYTolerance = 1.8

// Row is a cluster of fragments sharing one visual baseline. Y is the
// representative key: the y of the first fragment seen for the row during
// top-to-bottom processing (the topmost one). Equality against the key is
// tolerance-based, so keys are only stable within a single grouping call.
// Fragments are ordered by ascending x.
type Row struct {
	Y         float64
	Fragments []text.Fragment
}

// Text returns the row's fragment texts joined with single spaces, left to
// right.
func (r Row) Text() string {
	parts := make([]string, len(r.Fragments))
	for i, f := range r.Fragments {
		parts[i] = f.Text
	}
	return strings.Join(parts, " ")
}

// GroupRows clusters fragments into rows by vertical proximity. Fragments
// are processed top-to-bottom, left-to-right; each joins the first existing
// row whose key lies within yTolerance of its y, or starts a new row keyed
// by its own y. The returned rows are ordered top-to-bottom.
//
// The scan is O(n*r) for n fragments and r rows, which is fine: r is bounded
// by the page's line count.
func GroupRows(fragments []text.Fragment, yTolerance float64) []Row {
	sorted := make([]text.Fragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []Row
	for _, f := range sorted {
		idx := -1
		for ri := range rows {
			if math.Abs(rows[ri].Y-f.Y) <= yTolerance {
				idx = ri
				break
			}
		}
		if idx < 0 {
			rows = append(rows, Row{Y: f.Y})
			idx = len(rows) - 1
		}
		rows[idx].Fragments = append(rows[idx].Fragments, f)
	}

	// Cluster insertion order is not guaranteed sorted when a fragment
	// joins an earlier row, so re-sort each row by x.
	for ri := range rows {
		frags := rows[ri].Fragments
		sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
	}

	return rows
}
