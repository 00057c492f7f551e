// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func newLinksCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "links <key>",
		Short: "Prints the SINTA profile, website and share text of one journal.",
		Long:  "The key is the slug of the journal name (as listed by the API) or one of its ISSNs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := state.service.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			detail := journal.DetailOf(record)

			t := newTable(cmd.OutOrStdout(), detail.Name)
			t.AppendRow(table.Row{"Profile", orMissing(detail.Links.Profile, journal.ErrNoProfile)})
			t.AppendRow(table.Row{"Website", orMissing(detail.Links.Website, journal.ErrNoWebsite)})
			if detail.Links.Scholar != "" {
				t.AppendRow(table.Row{"Google Scholar", detail.Links.Scholar})
			}
			t.AppendRow(table.Row{"Share", detail.Links.Share})
			t.Render()
			return nil
		},
	}
}

func orMissing(link string, missing error) string {
	if link == "" {
		return missing.Error()
	}
	return link
}
