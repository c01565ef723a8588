package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

// Store exposes read-only entity accessors over the farm database.
// Writes belong to the dashboard's CRUD layer, not the reporting
// engine, so none are offered here.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}

type FieldReader struct{ db *sql.DB }

func (s *Store) Fields() *FieldReader { return &FieldReader{db: s.db} }

func (r *FieldReader) GetAll(ctx context.Context) ([]domain.Field, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, crop_type, size, status FROM fields`)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}
	defer rows.Close()

	var fields []domain.Field
	for rows.Next() {
		var f domain.Field
		if err := rows.Scan(&f.ID, &f.Name, &f.CropType, &f.Size, &f.Status); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

type TaskReader struct{ db *sql.DB }

func (s *Store) Tasks() *TaskReader { return &TaskReader{db: s.db} }

func (r *TaskReader) GetAll(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, field_id, type, status, assigned_date, created_at, due_date,
		       supply_cost, labor_cost, cost
		FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var assigned, due sql.NullTime
		if err := rows.Scan(&t.ID, &t.FieldID, &t.Type, &t.Status, &assigned,
			&t.CreatedAt, &due, &t.SupplyCost, &t.LaborCost, &t.Cost); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assigned.Valid {
			v := assigned.Time
			t.AssignedDate = &v
		}
		if due.Valid {
			v := due.Time
			t.DueDate = &v
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type ActivityReader struct{ db *sql.DB }

func (s *Store) Activities() *ActivityReader { return &ActivityReader{db: s.db} }

func (r *ActivityReader) GetAll(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, field_id, type, timestamp, yield_amount FROM activities`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.FieldID, &a.Type, &a.Timestamp, &a.YieldAmount); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

type EquipmentReader struct{ db *sql.DB }

func (s *Store) Equipment() *EquipmentReader { return &EquipmentReader{db: s.db} }

func (r *EquipmentReader) GetAll(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, total_hours, utilization_rate,
		       purchase_price, maintenance_cost, fuel_cost
		FROM equipment`)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	var equipment []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Type, &eq.TotalHours,
			&eq.UtilizationRate, &eq.PurchasePrice, &eq.MaintenanceCost, &eq.FuelCost); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		equipment = append(equipment, eq)
	}
	return equipment, rows.Err()
}

// ROI derives total cost of ownership from the unit's recorded cost
// components, matching the dashboard's equipment collaborator.
func (r *EquipmentReader) ROI(_ context.Context, eq domain.Equipment) (domain.EquipmentROI, error) {
	return domain.EquipmentROI{
		TotalCostOfOwnership: eq.PurchasePrice + eq.MaintenanceCost + eq.FuelCost,
	}, nil
}
