// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/pkg/pagination"
)

func newSearchCommand(state *app) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Prints one page of the filtered and sorted catalogue.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewState, err := flags.state(state.service)
			if err != nil {
				return err
			}

			view, err := state.service.Browse(cmd.Context(), viewState)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout(), "")
			t.AppendHeader(table.Row{"#", "Journal", "ISSN", "Affiliation", "Accreditation", "Scopus", "Garuda", "Impact", "Key"})
			for i, record := range view.Page.Items {
				entry := journal.EntryOf(record)
				t.AppendRow(table.Row{
					view.Page.StartIndex + i + 1,
					entry.Name,
					issnOf(entry),
					entry.Affiliation,
					entry.Accreditation,
					flag(entry.Scopus),
					flag(entry.Garuda),
					entry.Impact,
					entry.Key,
				})
			}
			t.AppendFooter(table.Row{"", fmt.Sprintf("Page %d of %d", view.Meta.Page, view.Meta.TotalPages), "", "", "", "", "", fmt.Sprintf("%d journals", view.Meta.Total), ""})
			t.Render()

			fmt.Fprintln(cmd.OutOrStdout(), pageWindow(view.Meta))
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}

// issnOf prefers the electronic ISSN.
func issnOf(entry journal.Entry) string {
	if entry.EISSN != journal.DefaultFallback {
		return entry.EISSN
	}
	return entry.PISSN
}

func flag(indexed bool) string {
	if indexed {
		return journal.FlagYes
	}
	return journal.FlagNo
}

// pageWindow renders the page buttons, marking the current page.
func pageWindow(meta pagination.Meta) string {
	parts := make([]string, len(meta.Window))
	for i, page := range meta.Window {
		switch page {
		case pagination.Gap:
			parts[i] = "…"
		case meta.Page:
			parts[i] = fmt.Sprintf("[%d]", page)
		default:
			parts[i] = strconv.Itoa(page)
		}
	}
	return strings.Join(parts, " ")
}
