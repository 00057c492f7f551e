// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

// Package commands implements the opensinta command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/catalog"
	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/internal/platform/apperr"
	"github.com/opensinta/opensinta/internal/platform/config"
)

// app carries the loaded catalogue between the root and its subcommands.
type app struct {
	file     string
	url      string
	timeout  time.Duration
	pageSize int
	verbose  bool

	service *journal.Service
}

// NewRootCommand builds the full command tree with flag defaults from cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	state := &app{}

	root := &cobra.Command{
		Use:           "opensinta",
		Short:         "opensinta browses the SINTA journal catalogue.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.load(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.file, "file", cfg.DatasetPath, "dataset JSON file, or its path under --url")
	flags.StringVar(&state.url, "url", cfg.DatasetURL, "dataset base URL")
	flags.DurationVar(&state.timeout, "timeout", cfg.DatasetTimeout, "dataset fetch timeout")
	flags.IntVar(&state.pageSize, "page-size", cfg.PageSize, "default page size")
	flags.BoolVarP(&state.verbose, "verbose", "v", cfg.Debug, "log catalogue events to stderr")

	root.AddCommand(
		newSearchCommand(state),
		newStatsCommand(state),
		newChartsCommand(state),
		newExportCommand(state),
		newLinksCommand(state),
	)
	return root
}

// ExecuteContext runs the command tree and returns the process exit code.
func ExecuteContext(ctx context.Context, cfg *config.Config) int {
	if err := NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		return 1
	}
	return 0
}

// load fetches the dataset once and builds the query service over it.
func (state *app) load(ctx context.Context, stderr io.Writer) error {
	level := slog.LevelError
	if state.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	loader := catalog.NewLoader(catalog.NewSource(state.url, state.file, state.timeout), nil, state.timeout, logger)
	if _, err := loader.Reload(ctx); err != nil {
		return err
	}

	state.service = journal.NewService(loader, state.pageSize, logger)
	return nil
}

// describe renders an error with its per-field validation details.
func describe(err error) string {
	appError := apperr.As(err)
	if appError == nil || len(appError.Details) == 0 {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(appError.Message)
	for _, detail := range appError.Details {
		fmt.Fprintf(&b, "\n  %s: %s", detail.Field, detail.Message)
	}
	return b.String()
}
