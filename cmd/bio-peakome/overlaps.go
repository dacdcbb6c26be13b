package main

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/peakome/analysis"
)

func newCmdOverlaps() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "overlaps",
		Short: "Assess residual overlap in a peakome",
		Long: `
overlaps counts strictly overlapping same-chromosome peak pairs in a
finished peakome and compares the scores of overlapping and
non-overlapping peaks.  A peakome built with -remove-overlaps should
report none.
`,
		ArgsName: "peakome.bed",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("overlaps takes exactly one peakome file, got %d", len(argv))
		}
		peaks, err := readPeakome(argv[0])
		if err != nil {
			return err
		}
		return analysis.AnalyzeOverlaps(peaks).Report(env.Stdout)
	})
	return cmd
}
