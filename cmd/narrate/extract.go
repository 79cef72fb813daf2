package main

import (
	"fmt"

	"github.com/fwojciec/narrator"
	"github.com/fwojciec/narrator/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	format, err := fs.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", narrator.ErrorMessage(err))
		return err
	}

	var failed int
	for _, path := range c.Files {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}

		doc, err := fs.ReadDocument(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", narrator.ErrorMessage(err))
			failed++
			continue
		}

		t := narrator.Transcribe(deps.Dispatcher, doc)
		if !narrator.HasContent(t.Body) {
			deps.Logger.Warn("content too short", "file", path, "adapter", t.Adapter)
		}
		if err := fs.Encode(deps.Stdout, t, format); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(c.Files))
	}
	return nil
}
