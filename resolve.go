package peakome

import "sort"

// RemoveOverlaps drops the lower-scoring peak of every strictly
// overlapping same-chromosome pair, genome-wide.  Peaks are
// stable-sorted by (chromosome, ascending start, descending score), so
// at a tied score the first-seen candidate wins, then a single iterative
// left-to-right sweep keeps the higher-scoring of current and next
// whenever next.Start < current.End.  Touching peaks are not
// overlapping and both survive.
//
// This is a local greedy choice, not maximum-weight interval packing; a
// globally better selection may exist.
func RemoveOverlaps(peaks []Peak, stats *Stats) []Peak {
	if len(peaks) == 0 {
		return nil
	}
	sorted := make([]Peak, len(peaks))
	copy(sorted, peaks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Score > b.Score
	})

	kept := make([]Peak, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if current.Chrom == next.Chrom && next.Start < current.End {
			stats.OverlapsRemoved++
			if next.Score > current.Score {
				current = next
			}
			continue
		}
		kept = append(kept, current)
		current = next
	}
	return append(kept, current)
}
