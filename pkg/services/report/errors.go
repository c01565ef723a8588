package report

import (
	"errors"
	"fmt"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

// ErrInvalidKind is returned when a caller requests an unknown report
// kind; no partial work is performed.
var ErrInvalidKind = errors.New("invalid report kind")

// SourceUnavailableError wraps a failed entity-reader fetch. The
// engine never retries; retry policy, if any, belongs to the reader.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// GenerationError tags any failure surfaced from a report build with
// the kind that was being built. Partial reports are never returned.
type GenerationError struct {
	Kind domain.Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s report: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
