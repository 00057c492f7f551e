// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func newStatsCommand(state *app) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints index counts, trending topics and top subject categories.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewState, err := flags.state(state.service)
			if err != nil {
				return err
			}

			counts, err := state.service.Stats(cmd.Context(), viewState)
			if err != nil {
				return err
			}
			summary, err := state.service.Subjects(cmd.Context(), viewState)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			t := newTable(out, "Journals")
			t.AppendHeader(table.Row{"Total", "Scopus", "SINTA", "Garuda"})
			t.AppendRow(table.Row{counts.Total, counts.Scopus, counts.Sinta, counts.Garuda})
			t.Render()

			renderSubjects(out, "Trending Topics", summary.Trending)
			renderSubjects(out, "Subject Categories", summary.Categories)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

func renderSubjects(out io.Writer, title string, buckets []journal.SubjectBucket) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{"Subject", "Journals", "Share"})
	for _, bucket := range buckets {
		t.AppendRow(table.Row{bucket.Subject, bucket.Count, fmt.Sprintf("%d%%", bucket.Percentage)})
	}
	t.Render()
}
