package peakome

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestRemoveOverlaps(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "a"},
		{Chrom: "chr1", Start: 150, End: 250, Score: 8, ID: "b"},
	}
	stats := Stats{}
	expect.EQ(t, RemoveOverlaps(peaks, &stats), []Peak{
		{Chrom: "chr1", Start: 150, End: 250, Score: 8, ID: "b"},
	})
	expect.EQ(t, stats.OverlapsRemoved, 1)
}

func TestRemoveOverlapsTouchingSurvive(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "a"},
		{Chrom: "chr1", Start: 200, End: 300, Score: 8, ID: "b"},
	}
	stats := Stats{}
	expect.EQ(t, RemoveOverlaps(peaks, &stats), peaks)
	expect.EQ(t, stats.OverlapsRemoved, 0)
}

func TestRemoveOverlapsTieKeepsFirst(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "first"},
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "second"},
	}
	stats := Stats{}
	expect.EQ(t, RemoveOverlaps(peaks, &stats), []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5, ID: "first"},
	})
}

func TestRemoveOverlapsPerChromosome(t *testing.T) {
	// Identical coordinates on different chromosomes never conflict.
	peaks := []Peak{
		{Chrom: "chr2", Start: 100, End: 200, Score: 1, ID: "b"},
		{Chrom: "chr1", Start: 100, End: 200, Score: 2, ID: "a"},
	}
	stats := Stats{}
	expect.EQ(t, RemoveOverlaps(peaks, &stats), []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 2, ID: "a"},
		{Chrom: "chr2", Start: 100, End: 200, Score: 1, ID: "b"},
	})
}

func TestRemoveOverlapsChain(t *testing.T) {
	// The greedy sweep resolves locally: c overlaps b but not a.
	peaks := []Peak{
		{Chrom: "chr1", Start: 0, End: 100, Score: 9, ID: "a"},
		{Chrom: "chr1", Start: 50, End: 150, Score: 5, ID: "b"},
		{Chrom: "chr1", Start: 120, End: 220, Score: 7, ID: "c"},
	}
	stats := Stats{}
	got := RemoveOverlaps(peaks, &stats)
	expect.EQ(t, got, []Peak{
		{Chrom: "chr1", Start: 0, End: 100, Score: 9, ID: "a"},
		{Chrom: "chr1", Start: 120, End: 220, Score: 7, ID: "c"},
	})
	// Adjacent survivors never overlap.
	for i := 1; i < len(got); i++ {
		expect.LE(t, got[i-1].End, got[i].Start)
	}
}
