package filestat

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/loctok/loctok/internal/config"
	"github.com/loctok/loctok/internal/discovery"
	"github.com/loctok/loctok/internal/language"
	"github.com/loctok/loctok/internal/tokenizer"
)

// Sink receives Records and per-entry I/O error counts from concurrent
// stat workers. Implementations (internal/aggregate.Aggregator) must be
// safe for concurrent use.
type Sink interface {
	Add(Record)
	RecordIOError(path string, err error)
}

// Run consumes candidates and, for each one, reads its content, validates
// UTF-8, counts lines, resolves the language, and counts tokens with enc.
// Non-UTF-8 files are skipped silently; this is never reported even as a
// count. Per-entry I/O errors are reported to sink but do not
// abort the run. Work is fanned out across up to concurrency goroutines
// (runtime.NumCPU() when concurrency <= 0); each goroutine holds at most
// one file's content in memory at a time.
func Run(ctx context.Context, candidates []discovery.Candidate, enc tokenizer.Encoding, concurrency int, sink Sink) error {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	logger := config.NewLogger("filestat")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, c := range candidates {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(c.AbsPath)
			if err != nil {
				logger.Debug("read error", "path", c.Path, "error", err)
				sink.RecordIOError(c.Path, err)
				return nil
			}

			if !utf8.Valid(data) {
				logger.Debug("skipping non-utf8 file", "path", c.Path)
				return nil
			}

			rec := Record{
				Path:     c.Path,
				Lines:    countNonEmptyLines(data),
				Language: language.FromPath(c.Path),
			}
			rec.Tokens = uint64(enc.Count(string(data)))

			sink.Add(rec)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("stat pipeline: %w", err)
	}
	return nil
}

// countNonEmptyLines counts line segments (split on '\n') that contain at
// least one non-whitespace byte. The final segment counts even when the
// file does not end with a trailing newline; a trailing empty segment
// produced by a final '\n' is not counted twice.
func countNonEmptyLines(data []byte) uint32 {
	var count uint32
	for len(data) > 0 {
		idx := bytes.IndexByte(data, '\n')
		var line []byte
		if idx == -1 {
			line = data
			data = nil
		} else {
			line = data[:idx]
			data = data[idx+1:]
		}
		if hasNonWhitespace(line) {
			count++
		}
	}
	return count
}

func hasNonWhitespace(line []byte) bool {
	for _, b := range line {
		switch b {
		case ' ', '\t', '\r', '\v', '\f':
			continue
		default:
			return true
		}
	}
	return false
}
