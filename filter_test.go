package peakome

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestPrimary(t *testing.T) {
	for _, chrom := range []string{"chr1", "chr9", "chr22", "chrX", "chrY"} {
		expect.True(t, Primary(chrom), "chrom=%s", chrom)
	}
	for _, chrom := range []string{"chr0", "chr23", "chrM", "chrx", "chr1_KI270706v1_random", "chrUn_KI270302v1", "1", "chr", ""} {
		expect.False(t, Primary(chrom), "chrom=%s", chrom)
	}
}

func TestReadSample(t *testing.T) {
	const in = `chr1	100	200	p1	5.5
chr1	300	400	p2
chrM	100	200	p3	9
chr1	500	junk	p4	1
chr1	-5	100	p5	1
chr1	400	400	p6	1
short	line
chr2	10	60	p7	2.5
`
	stats := Stats{}
	peaks, err := ReadSample(strings.NewReader(in), "test", 50000, &stats)
	assert.NoError(t, err)
	expect.EQ(t, peaks, []Peak{
		{Chrom: "chr1", Start: 100, End: 200, Score: 5.5, ID: "p1"},
		{Chrom: "chr1", Start: 300, End: 400, Score: 0, ID: "p2"},
		{Chrom: "chr2", Start: 10, End: 60, Score: 2.5, ID: "p7"},
	})
	expect.EQ(t, stats.Lines, 8)
	expect.EQ(t, stats.MalformedLines, 4)
	expect.EQ(t, stats.NonPrimary, 1)
	expect.EQ(t, stats.Filtered, 3)
	expect.EQ(t, len(stats.Warnings), 4)
}

func TestReadSampleCap(t *testing.T) {
	const in = `chr1	0	10	a	1
chr1	10	20	b	9
chr1	20	30	c	5
chr1	30	40	d	5
chr1	40	50	e	2
`
	stats := Stats{}
	peaks, err := ReadSample(strings.NewReader(in), "test", 3, &stats)
	assert.NoError(t, err)
	// Stable sort by descending score: ties keep input order.
	expect.EQ(t, peaks, []Peak{
		{Chrom: "chr1", Start: 10, End: 20, Score: 9, ID: "b"},
		{Chrom: "chr1", Start: 20, End: 30, Score: 5, ID: "c"},
		{Chrom: "chr1", Start: 30, End: 40, Score: 5, ID: "d"},
	})
	expect.EQ(t, stats.CapDropped, 2)
	expect.EQ(t, stats.Filtered, 3)
}

func TestReadPeaksNoFiltering(t *testing.T) {
	const in = "chrM\t0\t100\tm1\t3\n"
	stats := Stats{}
	peaks, err := ReadPeaks(strings.NewReader(in), "test", &stats)
	assert.NoError(t, err)
	expect.EQ(t, peaks, []Peak{{Chrom: "chrM", Start: 0, End: 100, Score: 3, ID: "m1"}})
	expect.EQ(t, stats.NonPrimary, 0)
}
