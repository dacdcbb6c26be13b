package peakome

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestMergeClose(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "a"},
		{Chrom: "chr1", Start: 205, End: 300, Score: 8, ID: "b"},
	}
	stats := Stats{}
	expect.EQ(t, MergeClose(peaks, 10, &stats), []Peak{
		{Chrom: "chr1", Start: 100, End: 300, Score: 8, ID: "a_b"},
	})
	expect.EQ(t, stats.Merged, 1)

	// The same pair stays apart below the threshold.
	stats = Stats{}
	expect.EQ(t, MergeClose(peaks, 4, &stats), peaks)
	expect.EQ(t, stats.Merged, 0)
}

func TestMergeCloseDegenerate(t *testing.T) {
	stats := Stats{}
	expect.EQ(t, len(MergeClose(nil, 10, &stats)), 0)

	single := []Peak{{Chrom: "chr1", Start: 5, End: 10, ID: "x"}}
	expect.EQ(t, MergeClose(single, 10, &stats), single)
}

func TestMergeCloseChain(t *testing.T) {
	// Unsorted input; c bridges a and b once sorting puts it between them.
	peaks := []Peak{
		{Chrom: "chr1", Start: 500, End: 600, Score: 1, ID: "b"},
		{Chrom: "chr1", Start: 100, End: 200, Score: 2, ID: "a"},
		{Chrom: "chr1", Start: 200, End: 499, Score: 7, ID: "c"},
	}
	stats := Stats{}
	expect.EQ(t, MergeClose(peaks, 1, &stats), []Peak{
		{Chrom: "chr1", Start: 100, End: 600, Score: 7, ID: "a_c_b"},
	})
	expect.EQ(t, stats.Merged, 2)
}

func TestMergeCloseProperties(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 0, End: 10, ID: "a"},
		{Chrom: "chr1", Start: 12, End: 20, ID: "b"},
		{Chrom: "chr1", Start: 25, End: 30, ID: "c"},
		{Chrom: "chr1", Start: 33, End: 40, ID: "d"},
		{Chrom: "chr1", Start: 100, End: 110, ID: "e"},
	}
	const maxDistance = 3
	stats := Stats{}
	once := MergeClose(peaks, maxDistance, &stats)
	// Adjacent outputs are separated by more than the threshold.
	for i := 1; i < len(once); i++ {
		expect.True(t, Distance(once[i-1], once[i]) > maxDistance, "i=%d", i)
	}
	// Idempotence: re-merging with the same threshold changes nothing.
	expect.EQ(t, MergeClose(once, maxDistance, &stats), once)
}
