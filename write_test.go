package peakome

import (
	"bytes"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestWritePeaks(t *testing.T) {
	peaks := []Peak{
		{Chrom: "chr1", Start: 0, End: 1000, Score: 8.5, ID: "unified_peak_000001"},
		{Chrom: "chr2", Start: 250, End: 1250, Score: 2, ID: "unified_peak_000002"},
	}
	var buf bytes.Buffer
	assert.NoError(t, WritePeaks(&buf, peaks, false, 1))
	expect.EQ(t, buf.String(),
		"chr1\t0\t1000\tunified_peak_000001\t8.5\n"+
			"chr2\t250\t1250\tunified_peak_000002\t2\n")
}
