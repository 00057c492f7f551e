// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func newExportCommand(state *app) *cobra.Command {
	flags := &viewFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes the filtered and sorted catalogue as a JSON array.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			viewState, err := flags.state(state.service)
			if err != nil {
				return err
			}

			records, err := state.service.ExportRecords(cmd.Context(), viewState)
			if err != nil {
				return err
			}

			if output == "-" {
				return journal.Export(cmd.OutOrStdout(), records)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err := journal.Export(file, records); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d journals to %s\n", len(records), output)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", journal.ExportFilename, `output file, "-" for stdout`)
	return cmd
}
