package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// RenderCSV produces a CSV document for the gradebook, one row per student.
func RenderCSV(book Gradebook) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(gradebookHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, record := range book.records() {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
