package peakome

import "fmt"

// Peak is a single genomic interval covering the 0-based half-open range
// [Start, End) on Chrom, with a caller-assigned confidence score and an
// optional ID.  Peaks are immutable values: every transformation in this
// package (merge, extension, splitting, overlap resolution) produces new
// Peaks instead of mutating its inputs, so the same Peak can safely be
// referenced from multiple grouping structures.
type Peak struct {
	Chrom string
	Start int
	End   int
	Score float64
	ID    string
}

// Length returns End - Start.
func (p Peak) Length() int { return p.End - p.Start }

// Overlaps reports whether p and o share at least one base.  Peaks that
// merely touch at a boundary do not overlap.
func (p Peak) Overlaps(o Peak) bool {
	if p.Chrom != o.Chrom {
		return false
	}
	return p.End > o.Start && o.End > p.Start
}

// OverlapLength returns the number of bases shared by p and o.
func (p Peak) OverlapLength(o Peak) int {
	if !p.Overlaps(o) {
		return 0
	}
	start, end := p.Start, p.End
	if o.Start > start {
		start = o.Start
	}
	if o.End < end {
		end = o.End
	}
	return end - start
}

func (p Peak) String() string {
	return fmt.Sprintf("%s:%d-%d#%s@%g", p.Chrom, p.Start, p.End, p.ID, p.Score)
}

// Distance returns the separation between two same-chromosome peaks: 0
// if they overlap or touch, otherwise the gap between the nearer
// endpoints.  Grouping by chromosome happens before any stage calls
// this, so a cross-chromosome pair indicates a defect in the caller.
func Distance(a, b Peak) int {
	if a.Chrom != b.Chrom {
		panic("peakome: internal error: Distance requires peaks on one chromosome")
	}
	switch {
	case a.End < b.Start:
		return b.Start - a.End
	case b.End < a.Start:
		return a.Start - b.End
	}
	return 0
}

// Merge combines two same-chromosome peaks into their joint span.  The
// merged score is the larger of the two scores; the merged ID joins the
// operand IDs with '_', with an empty-ID operand omitting the join.
func Merge(a, b Peak) Peak {
	if a.Chrom != b.Chrom {
		panic("peakome: internal error: cannot merge peaks from different chromosomes")
	}
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	score := a.Score
	if b.Score > score {
		score = b.Score
	}
	return Peak{Chrom: a.Chrom, Start: start, End: end, Score: score, ID: joinIDs(a.ID, b.ID)}
}

func joinIDs(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "_" + b
}
