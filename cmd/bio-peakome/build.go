package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/peakome"
)

type buildFlags struct {
	out            *string
	targetLength   *int
	mergeDistance  *int
	maxPeaks       *int
	removeOverlaps *bool
	parallelism    *int
	bgz            *bool
}

func newCmdBuild() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "build",
		Short: "Build a unified peakome from per-sample peak calls",
		Long: `
build pools the peak calls of every input file, merges nearby peaks
within each chromosome, and rewrites every merged peak to one exact
target length.  Inputs are whitespace-separated
chrom/start/end/id[/score] lines ("." for a missing id); gzipped inputs
are decompressed transparently.  The result is 5-column BED
(chrom, start, end, id, score) sorted by (chromosome, start).
`,
		ArgsName: "peaks.bed ...",
	}
	flags := buildFlags{
		out:            cmd.Flags.String("out", "unified_peakome.bed", "Output path."),
		targetLength:   cmd.Flags.Int("target-length", peakome.DefaultOpts.TargetLength, "Exact length of every output peak."),
		mergeDistance:  cmd.Flags.Int("merge-distance", peakome.DefaultOpts.MergeDistance, "Largest gap between same-chromosome peaks that are merged into one."),
		maxPeaks:       cmd.Flags.Int("max-peaks-per-sample", peakome.DefaultOpts.MaxPeaksPerSample, "Keep only this many top-scoring peaks per sample."),
		removeOverlaps: cmd.Flags.Bool("remove-overlaps", false, "Drop the lower-scoring peak of every residual overlap, genome-wide."),
		parallelism:    cmd.Flags.Int("parallelism", 0, "Max simultaneous jobs. If <= 0, use the number of CPUs."),
		bgz:            cmd.Flags.Bool("bgz", false, "BGZF-compress the output."),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("build takes one or more peak files")
		}
		return runBuild(flags, argv)
	})
	return cmd
}

func runBuild(flags buildFlags, paths []string) (err error) {
	ctx := vcontext.Background()
	closeOnce := errors.Once{}
	defer func() {
		if e := closeOnce.Err(); e != nil && err == nil {
			err = e
		}
	}()

	samples := make([]peakome.Sample, 0, len(paths))
	for _, path := range paths {
		r, closeIn, err := openInput(ctx, path)
		if err != nil {
			return err
		}
		defer func() { closeOnce.Set(closeIn()) }()
		samples = append(samples, peakome.Sample{Name: path, In: r})
	}

	opts := peakome.Opts{
		TargetLength:      *flags.targetLength,
		MergeDistance:     *flags.mergeDistance,
		MaxPeaksPerSample: *flags.maxPeaks,
		RemoveOverlaps:    *flags.removeOverlaps,
		Parallelism:       *flags.parallelism,
	}
	peaks, stats, err := peakome.Build(samples, opts)
	if err != nil {
		return err
	}
	for _, warning := range stats.Warnings {
		log.Error.Printf("%s", warning)
	}
	log.Printf("dropped %d peak(s): %d malformed line(s), %d non-primary, %d over the per-sample cap",
		stats.Filtered, stats.MalformedLines, stats.NonPrimary, stats.CapDropped)

	parallelism := *flags.parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if err := writePeakome(ctx, *flags.out, peaks, *flags.bgz, parallelism); err != nil {
		return err
	}
	log.Printf("wrote %d peak(s) to %s", len(peaks), *flags.out)
	return nil
}

func writePeakome(ctx context.Context, path string, peaks []peakome.Peak, bgz bool, parallelism int) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return peakome.WritePeaks(out.Writer(ctx), peaks, bgz, parallelism)
}
