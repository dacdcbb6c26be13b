package main

/*
bio-peakome consolidates peak calls made independently across many
samples into one non-redundant set of fixed-length intervals (a
"peakome"), and provides reports over the result.
*/

import (
	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:  "bio-peakome",
		Short: "Build and inspect unified peak sets",
		Long: `
Command bio-peakome pools per-sample peak calls into one uniform-length,
non-redundant peakome, and reports on composition, residual overlap,
score comparability, and cross-sample score matrices.
`,
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdBuild(),
			newCmdStats(),
			newCmdOverlaps(),
			newCmdCompare(),
			newCmdCompile(),
			newCmdMergeMatrices(),
		},
	}
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
