// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
)

// viewFlags are the browsing criteria shared by the collection commands.
type viewFlags struct {
	query    string
	category string
	tiers    []string
	sort     string
	page     int
	limit    int
}

func (flags *viewFlags) register(cmd *cobra.Command, paged bool) {
	set := cmd.Flags()
	set.StringVarP(&flags.query, "query", "q", "", "search name, ISSN, affiliation or subject")
	set.StringVarP(&flags.category, "category", "c", "", "all, scopus, sinta or garuda")
	set.StringSliceVarP(&flags.tiers, "tier", "t", nil, "accreditation tiers, e.g. S1,S2")
	set.StringVarP(&flags.sort, "sort", "s", "", "impact, name or sinta")
	if paged {
		set.IntVarP(&flags.page, "page", "p", 1, "page number")
		set.IntVarP(&flags.limit, "limit", "l", 0, "page size (defaults to --page-size)")
	}
}

// state validates the flags into a view state.
func (flags *viewFlags) state(service *journal.Service) (journal.ViewState, error) {
	return service.ParseView(journal.ViewParams{
		Query:    flags.query,
		Category: flags.category,
		Tiers:    flags.tiers,
		Sort:     flags.sort,
		Page:     flags.page,
		Limit:    flags.limit,
	})
}

// newTable returns a rounded table writer mirrored to out.
func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}
