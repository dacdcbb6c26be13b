package peakome

import "fmt"

// maxWarnings bounds the number of per-line diagnostics retained
// verbatim; the MalformedLines counter keeps the full tally.
const maxWarnings = 100

// Stats collects run counters and recoverable per-line diagnostics.
// Each parallel worker owns its own Stats; copies are combined with
// Merge at the join point, so no locking is needed.
type Stats struct {
	// Samples is the number of sample inputs processed.
	Samples int
	// Lines is the total number of input lines scanned.
	Lines int
	// MalformedLines is the number of lines skipped because they had
	// too few fields, non-numeric coordinates or scores, or an invalid
	// coordinate pair.
	MalformedLines int
	// NonPrimary is the number of records dropped for living on a
	// non-primary chromosome (contigs, chrM, unplaced scaffolds).
	NonPrimary int
	// CapDropped is the number of peaks discarded by the per-sample
	// score-ranked cap.
	CapDropped int
	// Filtered is the number of peaks surviving filtering and capping.
	Filtered int
	// Merged is the number of merge operations performed by MergeClose.
	Merged int
	// Extended is the number of peaks lengthened to the target length.
	Extended int
	// Split is the number of peaks divided into target-length windows.
	Split int
	// SplitDropped counts split remainders too short for a full window.
	SplitDropped int
	// OverlapsRemoved is the number of peaks dropped by RemoveOverlaps.
	OverlapsRemoved int

	// Warnings holds up to maxWarnings recoverable diagnostics, one per
	// skipped line.
	Warnings []string
}

// Warnf records one recoverable diagnostic.
func (s *Stats) Warnf(format string, args ...interface{}) {
	if len(s.Warnings) < maxWarnings {
		s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
	}
}

// Merge adds the field values of the two Stats objects and creates new
// Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Samples += o.Samples
	s.Lines += o.Lines
	s.MalformedLines += o.MalformedLines
	s.NonPrimary += o.NonPrimary
	s.CapDropped += o.CapDropped
	s.Filtered += o.Filtered
	s.Merged += o.Merged
	s.Extended += o.Extended
	s.Split += o.Split
	s.SplitDropped += o.SplitDropped
	s.OverlapsRemoved += o.OverlapsRemoved
	for _, w := range o.Warnings {
		if len(s.Warnings) >= maxWarnings {
			break
		}
		s.Warnings = append(s.Warnings, w)
	}
	return s
}
