package peakome

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestUniformLengthPassThrough(t *testing.T) {
	peaks := []Peak{{Chrom: "chr1", Start: 100, End: 1100, Score: 3, ID: "p"}}
	stats := Stats{}
	expect.EQ(t, UniformLength(peaks, 1000, &stats), peaks)
	expect.EQ(t, stats.Extended, 0)
	expect.EQ(t, stats.Split, 0)
}

func TestUniformLengthExtend(t *testing.T) {
	stats := Stats{}
	// Even deficit splits evenly.
	got := UniformLength([]Peak{{Chrom: "chr1", Start: 1000, End: 1200, Score: 3, ID: "p"}}, 300, &stats)
	expect.EQ(t, got, []Peak{{Chrom: "chr1", Start: 950, End: 1250, Score: 3, ID: "p"}})

	// The extra base of an odd deficit goes to the right.
	got = UniformLength([]Peak{{Chrom: "chr1", Start: 1000, End: 1200, ID: "p"}}, 201, &stats)
	expect.EQ(t, got, []Peak{{Chrom: "chr1", Start: 1000, End: 1201, ID: "p"}})
	expect.EQ(t, stats.Extended, 2)
}

func TestUniformLengthExtendClampsAtOrigin(t *testing.T) {
	stats := Stats{}
	got := UniformLength([]Peak{{Chrom: "chr1", Start: 100, End: 300, Score: 3, ID: "p"}}, 1000, &stats)
	expect.EQ(t, got, []Peak{{Chrom: "chr1", Start: 0, End: 1000, Score: 3, ID: "p"}})
}

func TestUniformLengthSplit(t *testing.T) {
	stats := Stats{}
	got := UniformLength([]Peak{{Chrom: "chr1", Start: 100, End: 2500, Score: 3, ID: "p"}}, 1000, &stats)
	// The tail window is shifted backward to end at 2500 and overlaps
	// its predecessor.
	expect.EQ(t, got, []Peak{
		{Chrom: "chr1", Start: 100, End: 1100, Score: 3, ID: "p_piece_1"},
		{Chrom: "chr1", Start: 1100, End: 2100, Score: 3, ID: "p_piece_2"},
		{Chrom: "chr1", Start: 1500, End: 2500, Score: 3, ID: "p_piece_3"},
	})
	expect.EQ(t, stats.Split, 1)
	expect.EQ(t, stats.SplitDropped, 0)
}

func TestUniformLengthSplitExactMultiple(t *testing.T) {
	stats := Stats{}
	got := UniformLength([]Peak{{Chrom: "chr1", Start: 0, End: 2000, ID: ""}}, 1000, &stats)
	expect.EQ(t, got, []Peak{
		{Chrom: "chr1", Start: 0, End: 1000, ID: "piece_1"},
		{Chrom: "chr1", Start: 1000, End: 2000, ID: "piece_2"},
	})
}

func TestUniformLengthInvariant(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 0, End: 17, ID: "a"},
		{Chrom: "chr1", Start: 40, End: 1040, ID: "b"},
		{Chrom: "chr1", Start: 2000, End: 5321, ID: "c"},
		{Chrom: "chr2", Start: 3, End: 4, ID: "d"},
	}
	const targetLength = 1000
	stats := Stats{}
	got := UniformLength(peaks, targetLength, &stats)
	for _, p := range got {
		expect.EQ(t, p.Length(), targetLength, "peak=%v", p)
	}
	// Splitting covers [start, end) with no gap: windows walk forward
	// and the shifted tail closes exactly at the parent end.
	expect.EQ(t, got[len(got)-2].End, 5321)
}
