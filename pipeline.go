package peakome

import (
	"fmt"
	"io"
	"runtime"
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
)

// Opts configures Build.
type Opts struct {
	// TargetLength is the exact length of every output peak.
	TargetLength int
	// MergeDistance is the largest gap between two same-chromosome
	// peaks for them to be merged into one.
	MergeDistance int
	// MaxPeaksPerSample caps the number of peaks retained per sample;
	// when a sample exceeds it, only the top scorers are kept.
	MaxPeaksPerSample int
	// RemoveOverlaps enables the final genome-wide greedy overlap pass.
	RemoveOverlaps bool
	// Parallelism is the maximum number of simultaneous sample or
	// chromosome jobs; 0 = runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	TargetLength:      1000,
	MergeDistance:     1,
	MaxPeaksPerSample: 50000,
}

// ErrNoInput is returned when Build receives no samples, or when no
// valid peak survives filtering.
var ErrNoInput = errors.New("peakome: no input peaks")

func (o Opts) validate() error {
	if o.TargetLength <= 0 {
		return errors.E(fmt.Sprintf("peakome: invalid configuration: target length %d, must be positive", o.TargetLength))
	}
	if o.MergeDistance < 0 {
		return errors.E(fmt.Sprintf("peakome: invalid configuration: merge distance %d, must be non-negative", o.MergeDistance))
	}
	if o.MaxPeaksPerSample <= 0 {
		return errors.E(fmt.Sprintf("peakome: invalid configuration: max peaks per sample %d, must be positive", o.MaxPeaksPerSample))
	}
	return nil
}

// Sample is one named source of raw peak calls.  The reader is owned
// exclusively by the pipeline worker that filters it.
type Sample struct {
	Name string
	In   io.Reader
}

// Build runs the full unification pipeline: per-sample filtering and
// capping, grouping by chromosome, per-chromosome merging and
// uniform-length normalization, optional genome-wide overlap removal,
// and a final stable (chromosome, start) ordering with sequential
// zero-padded ids assigned to peaks that lack one.
//
// Every stage maps one ordered sequence to another; no record is
// mutated after construction.  Per-line parse failures are collected in
// the returned Stats and never abort the run.  An invalid configuration
// or empty input fails before any work is done.
func Build(samples []Sample, opts Opts) ([]Peak, Stats, error) {
	if err := opts.validate(); err != nil {
		return nil, Stats{}, err
	}
	if len(samples) == 0 {
		return nil, Stats{}, ErrNoInput
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	// Filter samples in parallel; each job owns its reader and its own
	// Stats copy.
	samplePeaks := make([][]Peak, len(samples))
	sampleStats := make([]Stats, len(samples))
	err := traverse.Each(len(samples), func(i int) error {
		peaks, err := ReadSample(samples[i].In, samples[i].Name, opts.MaxPeaksPerSample, &sampleStats[i])
		if err != nil {
			return errors.E(err, "read sample:", samples[i].Name)
		}
		samplePeaks[i] = peaks
		log.Printf("%s: %d peak(s) after filtering", samples[i].Name, len(peaks))
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Samples: len(samples)}
	byChrom := map[string][]Peak{}
	total := 0
	for i, peaks := range samplePeaks {
		stats = stats.Merge(sampleStats[i])
		total += len(peaks)
		for _, p := range peaks {
			byChrom[p.Chrom] = append(byChrom[p.Chrom], p)
		}
	}
	if total == 0 {
		return nil, stats, ErrNoInput
	}

	chroms := make([]string, 0, len(byChrom))
	for chrom := range byChrom {
		chroms = append(chroms, chrom)
	}
	sort.Strings(chroms)
	log.Printf("%d peak(s) across %d chromosome(s)", total, len(chroms))

	// Chromosomes are independent once grouped; shard them over
	// parallel jobs and join before the genome-wide resolver.
	chromPeaks := make([][]Peak, len(chroms))
	jobStats := make([]Stats, parallelism)
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(chroms)) / parallelism
		endIdx := ((jobIdx + 1) * len(chroms)) / parallelism
		st := &jobStats[jobIdx]
		for idx := startIdx; idx < endIdx; idx++ {
			merged := MergeClose(byChrom[chroms[idx]], opts.MergeDistance, st)
			chromPeaks[idx] = UniformLength(merged, opts.TargetLength, st)
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	for _, st := range jobStats {
		stats = stats.Merge(st)
	}

	unified := make([]Peak, 0, total)
	for _, peaks := range chromPeaks {
		unified = append(unified, peaks...)
	}
	if opts.RemoveOverlaps {
		before := len(unified)
		unified = RemoveOverlaps(unified, &stats)
		log.Printf("overlap removal: %d -> %d peak(s)", before, len(unified))
	}

	sort.SliceStable(unified, func(i, j int) bool {
		if unified[i].Chrom != unified[j].Chrom {
			return unified[i].Chrom < unified[j].Chrom
		}
		return unified[i].Start < unified[j].Start
	})
	for i := range unified {
		if unified[i].ID == "" {
			unified[i].ID = fmt.Sprintf("unified_peak_%06d", i+1)
		}
	}
	log.Printf("unified peakome: %d peak(s)", len(unified))
	return unified, stats, nil
}
