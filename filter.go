package peakome

import (
	"bufio"
	"io"
	"math"
	"sort"
	"strconv"

	gunsafe "github.com/grailbio/base/unsafe"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' '
// is treated as a delimiter.  These simple loops beat the standard
// library string-split functions when only a handful of columns matter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

// Primary reports whether chrom names one of the standard human
// autosomes (chr1..chr22) or sex chromosomes (chrX, chrY).  Alternate
// contigs, chrM and unplaced scaffolds are not primary.  The match is
// case-sensitive.
func Primary(chrom string) bool {
	if len(chrom) < 4 || chrom[:3] != "chr" {
		return false
	}
	rest := chrom[3:]
	if rest == "X" || rest == "Y" {
		return true
	}
	if len(rest) > 2 {
		return false
	}
	n := 0
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n >= 1 && n <= 22
}

// scanPeaks parses whitespace-separated `chrom start end id [score]`
// lines.  score defaults to 0 when absent; an id of "." means the record
// has no id.  A line with fewer than 4 fields, a non-numeric or
// non-finite number, or start/end violating 0 <= start < end is skipped
// with a diagnostic recorded in stats; parse failures are never fatal.
// When primaryOnly is set, records on non-primary chromosomes are
// silently dropped.
func scanPeaks(r io.Reader, name string, primaryOnly bool, stats *Stats) ([]Peak, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var peaks []Peak
	var tokens [5][]byte
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		stats.Lines++
		nToken := getTokens(tokens[:], scanner.Bytes())
		if nToken == 0 {
			continue
		}
		if nToken < 4 {
			stats.MalformedLines++
			stats.Warnf("%s:%d: %d field(s), want at least 4", name, lineIdx, nToken)
			continue
		}
		start, err := strconv.Atoi(gunsafe.BytesToString(tokens[1]))
		if err != nil {
			stats.MalformedLines++
			stats.Warnf("%s:%d: bad start %q", name, lineIdx, tokens[1])
			continue
		}
		end, err := strconv.Atoi(gunsafe.BytesToString(tokens[2]))
		if err != nil {
			stats.MalformedLines++
			stats.Warnf("%s:%d: bad end %q", name, lineIdx, tokens[2])
			continue
		}
		if start < 0 || end <= start {
			stats.MalformedLines++
			stats.Warnf("%s:%d: invalid coordinate pair [%d, %d)", name, lineIdx, start, end)
			continue
		}
		score := 0.0
		if nToken > 4 {
			score, err = strconv.ParseFloat(gunsafe.BytesToString(tokens[4]), 64)
			if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
				stats.MalformedLines++
				stats.Warnf("%s:%d: bad score %q", name, lineIdx, tokens[4])
				continue
			}
		}
		// tokens alias the scanner's buffer; copy what we keep.
		chrom := string(tokens[0])
		if primaryOnly && !Primary(chrom) {
			stats.NonPrimary++
			continue
		}
		id := string(tokens[3])
		if id == "." {
			// BED convention for a missing name.
			id = ""
		}
		peaks = append(peaks, Peak{Chrom: chrom, Start: start, End: end, Score: score, ID: id})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return peaks, nil
}

// ReadPeaks parses every valid record from r without chromosome
// filtering or capping.  Intended for finished peakomes and other
// already-curated interval sets.
func ReadPeaks(r io.Reader, name string, stats *Stats) ([]Peak, error) {
	return scanPeaks(r, name, false, stats)
}

// ReadSample parses one sample's raw peak calls, keeping only records on
// primary chromosomes.  If more than maxPeaks survive, the peaks are
// stable-sorted by descending score and truncated to the top maxPeaks.
// The cap bounds downstream cost; it is not a claim about peak quality.
func ReadSample(r io.Reader, name string, maxPeaks int, stats *Stats) ([]Peak, error) {
	peaks, err := scanPeaks(r, name, true, stats)
	if err != nil {
		return nil, err
	}
	if len(peaks) > maxPeaks {
		sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Score > peaks[j].Score })
		stats.CapDropped += len(peaks) - maxPeaks
		peaks = peaks[:maxPeaks]
	}
	stats.Filtered += len(peaks)
	return peaks, nil
}
