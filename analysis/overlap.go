package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/store/interval"

	"github.com/grailbio/peakome"
)

// peakInterval adapts a Peak to biogo's integer interval tree.
type peakInterval struct {
	start, end int
	id         uintptr
}

func (i peakInterval) Overlap(b interval.IntRange) bool {
	// Half-open coordinates: touching is not overlapping.
	return i.end > b.Start && i.start < b.End
}
func (i peakInterval) ID() uintptr              { return i.id }
func (i peakInterval) Range() interval.IntRange { return interval.IntRange{Start: i.start, End: i.end} }

// OverlapReport summarizes the redundancy remaining in a peakome.
type OverlapReport struct {
	Total            int
	OverlappingPairs int
	PeaksInOverlap   int

	MeanOverlapLen float64
	MaxOverlapLen  int

	// Mean scores of peaks that do / do not participate in an overlap;
	// a large gap suggests selection bias.
	MeanScoreOverlap    float64
	MeanScoreNonOverlap float64
}

// AnalyzeOverlaps counts strictly overlapping same-chromosome pairs.
// Lookups go through a per-chromosome interval tree, so the cost is
// near-linear in the number of peaks plus the number of overlapping
// pairs.
func AnalyzeOverlaps(peaks []peakome.Peak) OverlapReport {
	r := OverlapReport{Total: len(peaks)}
	byChrom := map[string][]peakome.Peak{}
	for _, p := range peaks {
		byChrom[p.Chrom] = append(byChrom[p.Chrom], p)
	}

	totalOverlapLen := 0
	var scoreOverlap, scoreNonOverlap float64
	nonOverlapping := 0
	for _, chromPeaks := range byChrom {
		tree := &interval.IntTree{}
		for i, p := range chromPeaks {
			if err := tree.Insert(peakInterval{start: p.Start, end: p.End, id: uintptr(i)}, false); err != nil {
				panic(fmt.Sprintf("analysis: internal error: interval insert: %v", err))
			}
		}
		involved := make([]bool, len(chromPeaks))
		for i, p := range chromPeaks {
			for _, m := range tree.Get(peakInterval{start: p.Start, end: p.End, id: uintptr(i)}) {
				j := int(m.ID())
				if j <= i {
					continue // count each pair once
				}
				ovl := p.OverlapLength(chromPeaks[j])
				r.OverlappingPairs++
				totalOverlapLen += ovl
				if ovl > r.MaxOverlapLen {
					r.MaxOverlapLen = ovl
				}
				involved[i] = true
				involved[j] = true
			}
		}
		for i, p := range chromPeaks {
			if involved[i] {
				r.PeaksInOverlap++
				scoreOverlap += p.Score
			} else {
				nonOverlapping++
				scoreNonOverlap += p.Score
			}
		}
	}
	if r.OverlappingPairs > 0 {
		r.MeanOverlapLen = float64(totalOverlapLen) / float64(r.OverlappingPairs)
	}
	if r.PeaksInOverlap > 0 {
		r.MeanScoreOverlap = scoreOverlap / float64(r.PeaksInOverlap)
	}
	if nonOverlapping > 0 {
		r.MeanScoreNonOverlap = scoreNonOverlap / float64(nonOverlapping)
	}
	return r
}

// Report writes a human-readable overlap assessment to w.
func (r OverlapReport) Report(w io.Writer) error {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Total peaks: %d\n", r.Total)
	fmt.Fprintf(&b, "Overlapping pairs: %d\n", r.OverlappingPairs)
	if r.Total > 0 {
		fmt.Fprintf(&b, "Peaks involved in overlaps: %d (%.1f%%)\n",
			r.PeaksInOverlap, 100*float64(r.PeaksInOverlap)/float64(r.Total))
	}
	if r.OverlappingPairs > 0 {
		fmt.Fprintf(&b, "Overlap length: mean %.1f max %d\n", r.MeanOverlapLen, r.MaxOverlapLen)
		fmt.Fprintf(&b, "Mean score: overlapping %.3f, non-overlapping %.3f\n",
			r.MeanScoreOverlap, r.MeanScoreNonOverlap)
	} else {
		b.WriteString("No overlaps: perfect peak separation\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
