package report

import (
	"context"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/farm-tools/agro-atlas/pkg/services/sources"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one request's private working set: the four collections
// fetched up front plus the cost-of-ownership figures resolved through
// the equipment ROI capability. Nothing in it is shared or cached
// across requests.
type Snapshot struct {
	Fields       []domain.Field
	Tasks        []domain.Task
	Activities   []domain.Activity
	Equipment    []domain.Equipment
	EquipmentTCO map[string]float64
}

// fetchSnapshot issues the four reader fetches concurrently and waits
// for all of them to settle. The first failure wins, the remaining
// fetches are cancelled through the group context, and no builder
// logic runs on a partial snapshot.
func fetchSnapshot(ctx context.Context, readers sources.Readers) (*Snapshot, error) {
	snap := &Snapshot{EquipmentTCO: make(map[string]float64)}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fields, err := readers.Fields.GetAll(ctx)
		if err != nil {
			return &SourceUnavailableError{Source: "fields", Err: err}
		}
		snap.Fields = fields
		return nil
	})
	g.Go(func() error {
		tasks, err := readers.Tasks.GetAll(ctx)
		if err != nil {
			return &SourceUnavailableError{Source: "tasks", Err: err}
		}
		snap.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		activities, err := readers.Activities.GetAll(ctx)
		if err != nil {
			return &SourceUnavailableError{Source: "activities", Err: err}
		}
		snap.Activities = activities
		return nil
	})
	g.Go(func() error {
		equipment, err := readers.Equipment.GetAll(ctx)
		if err != nil {
			return &SourceUnavailableError{Source: "equipment", Err: err}
		}
		snap.Equipment = equipment
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, eq := range snap.Equipment {
		roi, err := readers.Equipment.ROI(ctx, eq)
		if err != nil {
			return nil, &SourceUnavailableError{Source: "equipment", Err: err}
		}
		snap.EquipmentTCO[eq.ID] = roi.TotalCostOfOwnership
	}

	return snap, nil
}

// activitiesForField returns the field's activities, window filtered
// when a period is supplied.
func (s *Snapshot) activitiesForField(fieldID string, period *domain.TimePeriod) []domain.Activity {
	var out []domain.Activity
	for _, a := range s.Activities {
		if a.FieldID != fieldID {
			continue
		}
		if period != nil && !period.Contains(a.Timestamp) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// tasksInWindow filters tasks by effective date (assigned date when
// present, creation time otherwise).
func (s *Snapshot) tasksInWindow(period domain.TimePeriod) []domain.Task {
	var out []domain.Task
	for _, t := range s.Tasks {
		if period.Contains(t.EffectiveDate()) {
			out = append(out, t)
		}
	}
	return out
}
