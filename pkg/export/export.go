// Package export serializes report documents into CSV text or a
// printable text document. It never reads entity data: builders hand
// it fully computed documents and it only renders them.
package export

import (
	"fmt"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a caller-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// File is one serialized report. The "pdf" format is a structured
// plain-text document, not real PDF bytes; the application/pdf mime
// type is kept for download parity with the dashboard this replaces.
type File struct {
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
	Filename string `json:"filename"`
}

// Export serializes a pre-built document. Combinations with no
// defined serialization yield an empty file rather than an error.
func Export(kind domain.Kind, format Format, doc domain.Document) (*File, error) {
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case FormatCSV:
		return &File{
			Content:  csvContent(kind, doc),
			MimeType: "text/csv",
			Filename: fmt.Sprintf("%s-report-%s.csv", kind, stamp),
		}, nil
	case FormatPDF:
		content, err := textContent(kind, doc)
		if err != nil {
			return nil, err
		}
		return &File{
			Content:  content,
			MimeType: "application/pdf",
			Filename: fmt.Sprintf("%s-report-%s.pdf", kind, stamp),
		}, nil
	default:
		return &File{MimeType: "text/plain"}, nil
	}
}
