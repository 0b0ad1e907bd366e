package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes the output document to path. With pretty set, the file is
// indented for human review; otherwise it is compact for downstream tools.
func WriteJSON(doc *Document, path string, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
