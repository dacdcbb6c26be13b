// Package analysis provides descriptive reports over finished peakomes:
// distribution summaries, residual-overlap assessment, and cross-sample
// score comparability.  Nothing here feeds back into the pipeline; these
// are read-only diagnostics.
package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/stat"

	"github.com/grailbio/peakome"
)

// Summary describes the composition of one peakome.
type Summary struct {
	Total       int
	Chromosomes []string
	PerChrom    map[string]int

	LengthMean, LengthMedian float64
	LengthMin, LengthMax     int

	ScoreMean, ScoreMedian float64
	ScoreMin, ScoreMax     float64

	// LengthCounts maps exact peak length to occurrence count.
	LengthCounts map[int]int
}

// Summarize computes distribution statistics over a peakome.  It panics
// on an empty input; callers surface ErrNoInput before reaching here.
func Summarize(peaks []peakome.Peak) Summary {
	if len(peaks) == 0 {
		panic("analysis: internal error: Summarize on empty peakome")
	}
	s := Summary{
		Total:        len(peaks),
		PerChrom:     map[string]int{},
		LengthCounts: map[int]int{},
	}
	lengths := make([]float64, len(peaks))
	scores := make([]float64, len(peaks))
	for i, p := range peaks {
		s.PerChrom[p.Chrom]++
		s.LengthCounts[p.Length()]++
		lengths[i] = float64(p.Length())
		scores[i] = p.Score
	}
	for chrom := range s.PerChrom {
		s.Chromosomes = append(s.Chromosomes, chrom)
	}
	sort.Strings(s.Chromosomes)

	sort.Float64s(lengths)
	sort.Float64s(scores)
	s.LengthMean = stat.Mean(lengths, nil)
	s.LengthMedian = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	s.LengthMin = int(lengths[0])
	s.LengthMax = int(lengths[len(lengths)-1])
	s.ScoreMean = stat.Mean(scores, nil)
	s.ScoreMedian = stat.Quantile(0.5, stat.Empirical, scores, nil)
	s.ScoreMin = scores[0]
	s.ScoreMax = scores[len(scores)-1]
	return s
}

// UniformFraction returns the fraction of peaks whose length is exactly
// targetLength.
func (s Summary) UniformFraction(targetLength int) float64 {
	return float64(s.LengthCounts[targetLength]) / float64(s.Total)
}

// Report writes a human-readable summary, including an ASCII sketch of
// the per-chromosome peak counts, to w.
func (s Summary) Report(w io.Writer, targetLength int) error {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Total peaks: %d across %d chromosome(s)\n", s.Total, len(s.Chromosomes))
	fmt.Fprintf(&b, "Length: mean %.1f median %.0f min %d max %d\n",
		s.LengthMean, s.LengthMedian, s.LengthMin, s.LengthMax)
	fmt.Fprintf(&b, "Score: mean %.3f median %.3f min %.3f max %.3f\n",
		s.ScoreMean, s.ScoreMedian, s.ScoreMin, s.ScoreMax)
	fmt.Fprintf(&b, "Peaks at target length %d: %d (%.1f%%)\n",
		targetLength, s.LengthCounts[targetLength], 100*s.UniformFraction(targetLength))
	for _, chrom := range s.Chromosomes {
		fmt.Fprintf(&b, "  %s: %d\n", chrom, s.PerChrom[chrom])
	}
	if len(s.Chromosomes) > 1 {
		counts := make([]float64, len(s.Chromosomes))
		for i, chrom := range s.Chromosomes {
			counts[i] = float64(s.PerChrom[chrom])
		}
		b.WriteString(asciigraph.Plot(counts,
			asciigraph.Height(10),
			asciigraph.Caption("peaks per chromosome (chromosomes in name order)")))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
