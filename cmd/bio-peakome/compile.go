package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/peakome/compile"
)

func newCmdCompile() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "compile",
		Short: "Compile per-sample score tracks into one matrix",
		Long: `
compile joins bedgraph-style score tracks
(chrom start end score peak_id) computed over a shared peakome into one
TSV matrix with a row per peak id and a score column per sample.
Sample names are derived from the track filenames.
`,
		ArgsName: "scores.bedgraph ...",
	}
	out := cmd.Flags.String("out", "compiled_scores.tsv", "Output path.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("compile takes one or more score tracks")
		}
		return runCompile(*out, argv)
	})
	return cmd
}

func runCompile(outPath string, paths []string) (err error) {
	ctx := vcontext.Background()
	cols := make([]compile.ScoreColumn, 0, len(paths))
	for _, path := range paths {
		r, closeIn, err := openInput(ctx, path)
		if err != nil {
			return err
		}
		col, err := compile.ReadScoreColumn(r, compile.SampleName(path))
		once := errors.Once{}
		once.Set(err)
		once.Set(closeIn())
		if err := once.Err(); err != nil {
			return err
		}
		log.Printf("%s: %d score(s)", col.Sample, len(col.Scores))
		cols = append(cols, col)
	}
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return compile.WriteMatrix(out.Writer(ctx), cols)
}

var chromLabelRE = regexp.MustCompile(`chr([0-9]{1,2}|[XY])\b`)

func newCmdMergeMatrices() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "merge-matrices",
		Short: "Merge per-chromosome score matrices",
		Long: `
merge-matrices concatenates score matrices compiled per chromosome into
one genome-wide matrix, prefixing each peak id with its chromosome.
The chromosome label is taken from the first "chrN" occurrence in each
input path.
`,
		ArgsName: "matrix.tsv ...",
	}
	out := cmd.Flags.String("out", "merged_scores.tsv", "Output path.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("merge-matrices takes one or more matrix files")
		}
		return runMergeMatrices(*out, argv)
	})
	return cmd
}

func runMergeMatrices(outPath string, paths []string) (err error) {
	ctx := vcontext.Background()
	closeOnce := errors.Once{}
	defer func() {
		if e := closeOnce.Err(); e != nil && err == nil {
			err = e
		}
	}()

	chroms := make([]string, 0, len(paths))
	rs := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		label := chromLabelRE.FindString(path)
		if label == "" {
			return fmt.Errorf("%s: no chromosome label in path", path)
		}
		r, closeIn, err := openInput(ctx, path)
		if err != nil {
			return err
		}
		defer func() { closeOnce.Set(closeIn()) }()
		chroms = append(chroms, label)
		rs = append(rs, r)
	}
	out, err := file.Create(ctx, outPath)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return compile.MergeChromosomeMatrices(out.Writer(ctx), chroms, rs)
}
