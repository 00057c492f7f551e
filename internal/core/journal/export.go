// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"encoding/json"
	"fmt"
	"io"
)

// ExportFilename is the download name of an exported record sequence.
const ExportFilename = "filtered_journals_data.json"

// Export writes the original objects of records as an indented JSON array.
func Export(w io.Writer, records []Record) error {
	raws := make([]map[string]any, len(records))
	for i, record := range records {
		raws[i] = record.Raw()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(raws); err != nil {
		return fmt.Errorf("journal: export: %w", err)
	}
	return nil
}
