package main

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/peakome"
	"github.com/grailbio/peakome/analysis"
	"github.com/grailbio/peakome/compile"
)

func newCmdCompare() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "compare",
		Short: "Compare score distributions across samples",
		Long: `
compare profiles the peak scores of each input sample and reports
whether the scales are similar enough for raw cross-sample comparison.
`,
		ArgsName: "peaks.bed peaks.bed ...",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return fmt.Errorf("compare takes two or more peak files, got %d", len(argv))
		}
		peakSets := make([][]peakome.Peak, 0, len(argv))
		profiles := make([]analysis.ScoreProfile, 0, len(argv))
		for _, path := range argv {
			peaks, err := readPeakome(path)
			if err != nil {
				return err
			}
			peakSets = append(peakSets, peaks)
			profiles = append(profiles, analysis.ProfileScores(compile.SampleName(path), peaks))
		}
		if err := analysis.CompareProfiles(profiles).Report(env.Stdout); err != nil {
			return err
		}
		if len(peakSets) == 2 {
			if r, shared := analysis.SharedScoreCorrelation(peakSets[0], peakSets[1]); shared >= 2 {
				fmt.Fprintf(env.Stdout, "Pearson correlation over %d shared peak id(s): %.3f\n", shared, r)
			}
		}
		return nil
	})
	return cmd
}
