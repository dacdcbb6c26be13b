package peakome

import "sort"

// MergeClose combines peaks on a single chromosome that lie within
// maxDistance of each other.  The input is stable-sorted by ascending
// start, then a single sweep folds each peak into a running accumulator
// whenever Distance(current, next) <= maxDistance; otherwise the
// accumulator is emitted and restarted.  The result is start-sorted and
// every adjacent pair is separated by more than maxDistance.
// MergeClose is idempotent for a fixed maxDistance.
func MergeClose(peaks []Peak, maxDistance int, stats *Stats) []Peak {
	if len(peaks) == 0 {
		return nil
	}
	sorted := make([]Peak, len(peaks))
	copy(sorted, peaks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Peak, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if Distance(current, next) <= maxDistance {
			current = Merge(current, next)
			stats.Merged++
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
