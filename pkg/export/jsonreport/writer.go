package jsonreport

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
)

// Write serializes the executive summary to an indented JSON document.
func Write(path string, summary domain.ExecutiveSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
