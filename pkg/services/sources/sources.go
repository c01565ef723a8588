package sources

import (
	"context"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

// The reporting engine is a pure consumer of these four collections.
// Implementations own persistence, retries and timeouts; the engine
// only issues reads and aborts a report build on the first failure.

type FieldReader interface {
	GetAll(ctx context.Context) ([]domain.Field, error)
}

type TaskReader interface {
	GetAll(ctx context.Context) ([]domain.Task, error)
}

type ActivityReader interface {
	GetAll(ctx context.Context) ([]domain.Activity, error)
}

// EquipmentReader additionally exposes the collaborator's ROI
// capability, of which the engine uses only the total cost of
// ownership figure.
type EquipmentReader interface {
	GetAll(ctx context.Context) ([]domain.Equipment, error)
	ROI(ctx context.Context, eq domain.Equipment) (domain.EquipmentROI, error)
}

// Readers bundles the four collaborators a report request fans out to.
type Readers struct {
	Fields     FieldReader
	Tasks      TaskReader
	Activities ActivityReader
	Equipment  EquipmentReader
}
