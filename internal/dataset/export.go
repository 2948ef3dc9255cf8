package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExportFilename is the download name offered by the preview page.
const ExportFilename = "zelda_sales_data.json"

// ExportJSON serializes records the way a browser's JSON.stringify(records, null, 2)
// does: two-space indent, struct key order, no HTML escaping, no trailing newline.
func ExportJSON(records []SalesRecord) ([]byte, error) {
	if records == nil {
		records = []SalesRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ParseJSON decodes an exported document back into records.
func ParseJSON(data []byte) ([]SalesRecord, error) {
	var records []SalesRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
