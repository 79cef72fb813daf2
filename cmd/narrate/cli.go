package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/narrator"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Dispatcher narrator.Dispatcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log adapter selection and reader timings"`

	Extract ExtractCmd `cmd:"" help:"Print the transcript of saved pages"`
	Convert ConvertCmd `cmd:"" help:"Convert every saved page of a directory to transcript files"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files  []string `arg:"" help:"Saved HTML pages"`
	Format string   `short:"f" default:"text" enum:"text,json,xml" help:"Output format (text, json, xml)"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Dir         string `arg:"" help:"Directory of saved HTML pages"`
	Out         string `short:"o" default:"transcripts" help:"Output directory, replaced on success"`
	Format      string `short:"f" default:"text" enum:"text,json,xml" help:"Transcript format (text, json, xml)"`
	Concurrency int    `short:"c" default:"4" help:"Pages converted in parallel"`
}
