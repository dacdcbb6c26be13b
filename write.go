package peakome

import (
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bgzf"
)

// WritePeaks writes peaks as 5-column BED lines
// (chrom, start, end, id, score), one record per line.  When bgzip is
// true the output is BGZF-compressed with the given write parallelism.
func WritePeaks(w io.Writer, peaks []Peak, bgzip bool, parallelism int) (err error) {
	var tsvw *tsv.Writer
	if bgzip {
		bgzfWriter := bgzf.NewWriter(w, parallelism)
		defer func() {
			if e := bgzfWriter.Close(); e != nil && err == nil {
				err = e
			}
		}()
		tsvw = tsv.NewWriter(bgzfWriter)
	} else {
		tsvw = tsv.NewWriter(w)
	}
	for _, p := range peaks {
		tsvw.WriteString(p.Chrom)
		tsvw.WriteString(strconv.Itoa(p.Start))
		tsvw.WriteString(strconv.Itoa(p.End))
		tsvw.WriteString(p.ID)
		tsvw.WriteString(strconv.FormatFloat(p.Score, 'g', -1, 64))
		if err = tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
