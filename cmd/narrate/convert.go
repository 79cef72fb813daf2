package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/bloom"
	"github.com/fwojciec/narrator/fs"
	"golang.org/x/sync/errgroup"
)

// duplicateFPRate is the false positive rate of the duplicate body filter.
const duplicateFPRate = 0.001

// convertStats counts page outcomes. Fields are updated concurrently.
type convertStats struct {
	saved, short, duplicate, failed atomic.Int64
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	format, err := fs.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", narrator.ErrorMessage(err))
		return err
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return err
	}
	in, err := filepath.Abs(c.Dir)
	if err != nil {
		return err
	}
	// Commit replaces the output directory, so it must not hold the pages.
	if contains(out, in) {
		err := narrator.Errorf(narrator.EINVALID, "output directory %s must not contain the input directory %s", c.Out, c.Dir)
		fmt.Fprintf(deps.Stderr, "error: %s\n", narrator.ErrorMessage(err))
		return err
	}

	paths, err := fs.Scan(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.Dir, err)
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stdout, "No HTML pages found in %s\n", c.Dir)
		return nil
	}

	store := fs.NewTranscriptStore(filepath.Dir(out), filepath.Base(out), format)
	seen := bloom.NewFilter(uint(len(paths)), duplicateFPRate)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var stats convertStats
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.convert(deps, store, seen, &stats, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = store.Abort()
		return err
	}
	if err := deps.Ctx.Err(); err != nil {
		_ = store.Abort()
		return err
	}

	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return fmt.Errorf("commit transcripts: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Converted %d of %d pages to %s (%d too short, %d duplicates, %d failed)\n",
		stats.saved.Load(), len(paths), store.Dir(),
		stats.short.Load(), stats.duplicate.Load(), stats.failed.Load())
	return nil
}

// contains reports whether dir is, or is an ancestor of, path. Both are
// absolute. Symlinks are resolved when the paths exist.
func contains(dir, path string) bool {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// convert processes one page. Failures are logged and counted so that one
// broken page does not stop the batch.
func (c *ConvertCmd) convert(deps *Dependencies, store *fs.TranscriptStore, seen *bloom.Filter, stats *convertStats, path string) {
	doc, err := fs.ReadDocument(path)
	if err != nil {
		deps.Logger.Error("read page", "file", path, "err", err)
		stats.failed.Add(1)
		return
	}

	t := narrator.Transcribe(deps.Dispatcher, doc)
	if !narrator.HasContent(t.Body) {
		deps.Logger.Warn("skipping page: content too short", "file", path, "adapter", t.Adapter)
		stats.short.Add(1)
		return
	}
	if seen.Seen(t.Body) {
		deps.Logger.Warn("skipping page: duplicate content", "file", path)
		stats.duplicate.Add(1)
		return
	}

	if err := store.Save(deps.Ctx, t); err != nil {
		deps.Logger.Error("save transcript", "file", path, "err", err)
		stats.failed.Add(1)
		return
	}
	stats.saved.Add(1)
	deps.Logger.Info("transcript saved", "file", path, "adapter", t.Adapter, "title", t.Metadata.Title)
}
