package analysis

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/grailbio/peakome"
)

// ScoreProfile holds the score distribution of one sample's peak calls.
type ScoreProfile struct {
	Sample string
	Count  int
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// ProfileScores computes the score distribution of one sample.
func ProfileScores(sample string, peaks []peakome.Peak) ScoreProfile {
	p := ScoreProfile{Sample: sample, Count: len(peaks)}
	if len(peaks) == 0 {
		return p
	}
	scores := make([]float64, len(peaks))
	for i, pk := range peaks {
		scores[i] = pk.Score
	}
	sort.Float64s(scores)
	p.Mean = stat.Mean(scores, nil)
	p.Median = stat.Quantile(0.5, stat.Empirical, scores, nil)
	p.Std = stat.StdDev(scores, nil)
	p.Min = scores[0]
	p.Max = scores[len(scores)-1]
	return p
}

// Comparability summarizes how similar the per-sample score
// distributions are.  Scores from different callers or runs are only
// comparable when the spread of sample means is small relative to the
// means themselves.
type Comparability struct {
	Profiles []ScoreProfile
	// CVMeans and CVMedians are coefficients of variation (in percent)
	// of the sample means and medians.
	CVMeans   float64
	CVMedians float64
}

// highCV flags a coefficient of variation that makes cross-sample score
// comparison dubious.
const highCV = 50.0

// CompareProfiles assesses score comparability across samples.  At
// least two non-empty profiles are required.
func CompareProfiles(profiles []ScoreProfile) Comparability {
	c := Comparability{Profiles: profiles}
	means := make([]float64, 0, len(profiles))
	medians := make([]float64, 0, len(profiles))
	for _, p := range profiles {
		if p.Count == 0 {
			continue
		}
		means = append(means, p.Mean)
		medians = append(medians, p.Median)
	}
	if len(means) < 2 {
		return c
	}
	c.CVMeans = cv(means)
	c.CVMedians = cv(medians)
	return c
}

// SharedScoreCorrelation computes the Pearson correlation of the scores
// two peak sets assign to the same peak ids, along with the number of
// shared ids.  Fewer than two shared ids yield a zero correlation.
func SharedScoreCorrelation(a, b []peakome.Peak) (r float64, shared int) {
	byID := make(map[string]float64, len(a))
	for _, p := range a {
		if p.ID != "" {
			byID[p.ID] = p.Score
		}
	}
	var xs, ys []float64
	for _, p := range b {
		if score, ok := byID[p.ID]; ok {
			xs = append(xs, score)
			ys = append(ys, p.Score)
		}
	}
	if len(xs) < 2 {
		return 0, len(xs)
	}
	return stat.Correlation(xs, ys, nil), len(xs)
}

func cv(xs []float64) float64 {
	mean := stat.Mean(xs, nil)
	if mean == 0 {
		return 0
	}
	return 100 * stat.StdDev(xs, nil) / mean
}

// Report writes a per-sample score table and a comparability verdict to
// w.
func (c Comparability) Report(w io.Writer) error {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%-24s %8s %10s %10s %10s %10s %10s\n",
		"sample", "count", "mean", "median", "std", "min", "max")
	for _, p := range c.Profiles {
		fmt.Fprintf(&b, "%-24s %8d %10.2f %10.2f %10.2f %10.2f %10.2f\n",
			p.Sample, p.Count, p.Mean, p.Median, p.Std, p.Min, p.Max)
	}
	fmt.Fprintf(&b, "CV of sample means: %.1f%%, of sample medians: %.1f%%\n", c.CVMeans, c.CVMedians)
	if c.CVMeans > highCV {
		b.WriteString("WARNING: sample score scales differ substantially; raw scores are not directly comparable\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
