package main

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/peakome"
	"github.com/grailbio/peakome/analysis"
)

func newCmdStats() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "stats",
		Short: "Summarize a finished peakome",
		Long: `
stats reports the composition of a peakome: per-chromosome counts and
the length and score distributions.
`,
		ArgsName: "peakome.bed",
	}
	targetLength := cmd.Flags.Int("target-length", peakome.DefaultOpts.TargetLength,
		"Report the fraction of peaks at exactly this length.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("stats takes exactly one peakome file, got %d", len(argv))
		}
		peaks, err := readPeakome(argv[0])
		if err != nil {
			return err
		}
		return analysis.Summarize(peaks).Report(env.Stdout, *targetLength)
	})
	return cmd
}
