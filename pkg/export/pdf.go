package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// column widths in mm, summing to the printable A4 width.
var pdfWidths = []float64{22, 34, 48, 24, 22, 18, 22}

// RenderPDF produces an A4 tabular PDF for the gradebook with the course
// title and grading weights as a heading.
func RenderPDF(book Gradebook) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if book.CourseTitle != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, book.CourseTitle, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, book.subtitle(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for i, header := range gradebookHeaders {
		pdf.CellFormat(pdfWidths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, record := range book.records() {
		for i, cell := range record {
			pdf.CellFormat(pdfWidths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
