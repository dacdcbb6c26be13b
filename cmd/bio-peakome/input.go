package main

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"

	"github.com/grailbio/peakome"
)

// openInput opens path, transparently decompressing gzipped inputs.
// The returned func closes the underlying file.
func openInput(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = in.Close(ctx)
			return nil, nil, err
		}
		r = gz
	}
	return r, func() error { return in.Close(ctx) }, nil
}

// readPeakome loads a finished peakome, logging parse diagnostics and
// failing when the file yields no peaks.
func readPeakome(path string) ([]peakome.Peak, error) {
	ctx := vcontext.Background()
	r, closeIn, err := openInput(ctx, path)
	if err != nil {
		return nil, err
	}
	stats := peakome.Stats{}
	peaks, err := peakome.ReadPeaks(r, path, &stats)
	once := errors.Once{}
	once.Set(err)
	once.Set(closeIn())
	if err := once.Err(); err != nil {
		return nil, err
	}
	for _, warning := range stats.Warnings {
		log.Error.Printf("%s", warning)
	}
	if len(peaks) == 0 {
		return nil, peakome.ErrNoInput
	}
	return peaks, nil
}
