package peakome

import "strconv"

// UniformLength rewrites every peak to length exactly targetLength.
// Peaks already at the target pass through unchanged.  Shorter peaks are
// extended symmetrically, with the extra base of an odd deficit going to
// the right; an extension that would cross the chromosome origin is
// clamped to [0, targetLength) so the exact-length invariant still
// holds.  (There is no equivalent clamp at the upper boundary: the
// pipeline does not track chromosome lengths.)  Longer peaks are split
// into consecutive targetLength windows walking from start; a final
// window that would run past end is shifted backward to end exactly at
// end, possibly overlapping its predecessor, and a remainder that cannot
// hold a full window is dropped rather than emitted short.
// Every output satisfies Length() == targetLength.
func UniformLength(peaks []Peak, targetLength int, stats *Stats) []Peak {
	uniform := make([]Peak, 0, len(peaks))
	for _, p := range peaks {
		switch {
		case p.Length() == targetLength:
			uniform = append(uniform, p)
		case p.Length() < targetLength:
			uniform = append(uniform, extend(p, targetLength))
			stats.Extended++
		default:
			uniform = split(uniform, p, targetLength, stats)
			stats.Split++
		}
	}
	return uniform
}

func extend(p Peak, targetLength int) Peak {
	deficit := targetLength - p.Length()
	low := deficit / 2
	start := p.Start - low
	end := p.End + (deficit - low)
	if start < 0 {
		start = 0
		end = targetLength
	}
	return Peak{Chrom: p.Chrom, Start: start, End: end, Score: p.Score, ID: p.ID}
}

func split(dst []Peak, p Peak, targetLength int, stats *Stats) []Peak {
	idx := 0
	for pos := p.Start; pos < p.End; {
		start, end := pos, pos+targetLength
		if end > p.End {
			end = p.End
			start = end - targetLength
			if start < p.Start {
				stats.SplitDropped++
				break
			}
		}
		idx++
		dst = append(dst, Peak{Chrom: p.Chrom, Start: start, End: end, Score: p.Score, ID: splitID(p.ID, idx)})
		pos = end
	}
	return dst
}

// splitID synthesizes the ID of the n'th (1-based) window of a split
// peak.
func splitID(parent string, n int) string {
	if parent == "" {
		return "piece_" + strconv.Itoa(n)
	}
	return parent + "_piece_" + strconv.Itoa(n)
}
