// Package compile joins per-sample score tracks over a shared peakome
// into cross-sample tables keyed by peak id.
package compile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// ScoreColumn holds one sample's per-peak scores keyed by peak id.
type ScoreColumn struct {
	Sample string
	Scores map[string]float64
}

// ReadScoreColumn parses a bedgraph-style score track: whitespace-
// separated `chrom start end score peak_id` lines, the score in column
// 4 and the peak id in column 5.  Unlike raw peak-call parsing, a
// malformed track is fatal: score tracks are machine-written over an
// already-curated peakome.
func ReadScoreColumn(r io.Reader, sample string) (ScoreColumn, error) {
	col := ScoreColumn{Sample: sample, Scores: map[string]float64{}}
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 5 {
			return ScoreColumn{}, errors.E(fmt.Sprintf("%s:%d: %d field(s), want 5", sample, lineIdx, len(fields)))
		}
		score, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return ScoreColumn{}, errors.E(err, fmt.Sprintf("%s:%d: bad score %q", sample, lineIdx, fields[3]))
		}
		col.Scores[fields[4]] = score
	}
	if err := scanner.Err(); err != nil {
		return ScoreColumn{}, err
	}
	return col, nil
}

var sampleNameRE = regexp.MustCompile(`^(.+?)_impact_scores\.bedgraph(\.gz)?$`)

// SampleName derives a sample label from a score-track filename: the
// conventional `_impact_scores.bedgraph` suffix is stripped when
// present, any extension otherwise.
func SampleName(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	if m := sampleNameRE.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// WriteMatrix writes one row per peak id and one score column per
// sample.  Columns appear in sample-name order.  Rows are ordered by
// the trailing integer of the peak id when every id carries one (the
// pipeline's unified_peak_%06d ids do), lexicographically otherwise.
// A sample without a score for a row gets an empty cell.
func WriteMatrix(w io.Writer, cols []ScoreColumn) error {
	sorted := make([]ScoreColumn, len(cols))
	copy(sorted, cols)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sample < sorted[j].Sample })

	idSet := map[string]bool{}
	for _, col := range sorted {
		for id := range col.Scores {
			idSet[id] = true
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sortPeakIDs(ids)

	tsvw := tsv.NewWriter(w)
	tsvw.WriteString("peak_id")
	for _, col := range sorted {
		tsvw.WriteString(col.Sample)
	}
	if err := tsvw.EndLine(); err != nil {
		return err
	}
	for _, id := range ids {
		tsvw.WriteString(id)
		for _, col := range sorted {
			if score, ok := col.Scores[id]; ok {
				tsvw.WriteString(strconv.FormatFloat(score, 'g', -1, 64))
			} else {
				tsvw.WriteString("")
			}
		}
		if err := tsvw.EndLine(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}

// sortPeakIDs orders ids by their trailing integer when every id has
// one, falling back to lexicographic order.
func sortPeakIDs(ids []string) {
	keys := make(map[string]int, len(ids))
	for _, id := range ids {
		n, ok := trailingInt(id)
		if !ok {
			sort.Strings(ids)
			return
		}
		keys[id] = n
	}
	sort.Slice(ids, func(i, j int) bool { return keys[ids[i]] < keys[ids[j]] })
}

func trailingInt(id string) (int, bool) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 || i == len(id)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	return n, err == nil
}

// MergeChromosomeMatrices concatenates per-chromosome score matrices
// that share an identical sample-column header, prefixing every peak id
// with its chromosome label so ids stay unique genome-wide.  chroms[k]
// labels the matrix read from rs[k].
func MergeChromosomeMatrices(w io.Writer, chroms []string, rs []io.Reader) error {
	if len(chroms) != len(rs) {
		panic("compile: internal error: chromosome/reader count mismatch")
	}
	if len(rs) == 0 {
		return errors.E("no matrices to merge")
	}
	tsvw := tsv.NewWriter(w)
	var header string
	for k, r := range rs {
		scanner := bufio.NewScanner(r)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return errors.E(fmt.Sprintf("%s: empty matrix", chroms[k]))
		}
		h := scanner.Text()
		if k == 0 {
			header = h
			for _, cell := range strings.Split(h, "\t") {
				tsvw.WriteString(cell)
			}
			if err := tsvw.EndLine(); err != nil {
				return err
			}
		} else if h != header {
			return errors.E(fmt.Sprintf("%s: sample columns differ from %s", chroms[k], chroms[0]))
		}
		for scanner.Scan() {
			cells := strings.Split(scanner.Text(), "\t")
			if cells[0] == "" {
				continue
			}
			tsvw.WriteString(chroms[k] + "_" + cells[0])
			for _, cell := range cells[1:] {
				tsvw.WriteString(cell)
			}
			if err := tsvw.EndLine(); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	return tsvw.Flush()
}
