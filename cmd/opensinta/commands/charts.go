// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func newChartsCommand(state *app) *cobra.Command {
	flags := &viewFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Prints every chart series of the filtered catalogue.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewState, err := flags.state(state.service)
			if err != nil {
				return err
			}

			charts, err := state.service.Charts(cmd.Context(), viewState)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(charts)
			}

			renderCharts(out, charts)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the series as JSON")
	return cmd
}

func renderCharts(out io.Writer, charts journal.Charts) {
	fmt.Fprintf(out, "Journals: %d  Average impact: %.2f\n", charts.Counts.Total, charts.AverageImpact)

	tiers := newTable(out, "Accreditation Tiers")
	tiers.AppendHeader(table.Row{"Tier", "Journals"})
	for _, bucket := range charts.Tiers {
		tiers.AppendRow(table.Row{bucket.Tier, bucket.Count})
	}
	tiers.Render()

	renderLabels(out, "Accreditation Labels", "Label", charts.Accreditation)

	indexing := newTable(out, "Indexing")
	indexing.AppendHeader(table.Row{"Index", journal.FlagYes, journal.FlagNo})
	indexing.AppendRow(table.Row{"Scopus", charts.ScopusIndexing.Yes, charts.ScopusIndexing.No})
	indexing.AppendRow(table.Row{"Garuda", charts.GarudaIndexing.Yes, charts.GarudaIndexing.No})
	indexing.Render()

	renderSubjects(out, "Subjects", charts.Subjects)
	renderLabels(out, "Top Institutions", "Institution", charts.Institutions)

	impact := newTable(out, "Impact Ranking")
	impact.AppendHeader(table.Row{"#", "Journal", "Impact", "Citations", "H5-index"})
	for i, entry := range charts.Impact {
		impact.AppendRow(table.Row{i + 1, entry.Label, fmt.Sprintf("%.2f", entry.Impact), entry.Citations, entry.H5Index})
	}
	impact.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	impact.Render()
}

func renderLabels(out io.Writer, title, heading string, labels []journal.LabelCount) {
	t := newTable(out, title)
	t.AppendHeader(table.Row{heading, "Journals"})
	for _, label := range labels {
		t.AppendRow(table.Row{label.Name, label.Count})
	}
	t.Render()
}
