package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/farm-tools/agro-atlas/pkg/export"
	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

// Reporter renders report documents to the console in the same
// printable text form the exporter produces.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(doc domain.Document) error {
	file, err := export.Export(doc.Kind(), export.FormatPDF, doc)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(r.writer, file.Content)
	return err
}
