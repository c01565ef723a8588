// Package memory implements the entity reader interfaces over plain
// slices. It backs the demo profile and most tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
)

type Store struct {
	mu         sync.RWMutex
	fields     []domain.Field
	tasks      []domain.Task
	activities []domain.Activity
	equipment  []domain.Equipment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SetFields(fields []domain.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = fields
}

func (s *Store) SetTasks(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func (s *Store) SetActivities(activities []domain.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = activities
}

func (s *Store) SetEquipment(equipment []domain.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = equipment
}

// Fields reader

type FieldReader struct{ store *Store }

func (s *Store) Fields() *FieldReader { return &FieldReader{store: s} }

func (r *FieldReader) GetAll(_ context.Context) ([]domain.Field, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Field, len(r.store.fields))
	copy(out, r.store.fields)
	return out, nil
}

// Tasks reader

type TaskReader struct{ store *Store }

func (s *Store) Tasks() *TaskReader { return &TaskReader{store: s} }

func (r *TaskReader) GetAll(_ context.Context) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Task, len(r.store.tasks))
	copy(out, r.store.tasks)
	return out, nil
}

// Activities reader

type ActivityReader struct{ store *Store }

func (s *Store) Activities() *ActivityReader { return &ActivityReader{store: s} }

func (r *ActivityReader) GetAll(_ context.Context) ([]domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Activity, len(r.store.activities))
	copy(out, r.store.activities)
	return out, nil
}

// Equipment reader

type EquipmentReader struct{ store *Store }

func (s *Store) Equipment() *EquipmentReader { return &EquipmentReader{store: s} }

func (r *EquipmentReader) GetAll(_ context.Context) ([]domain.Equipment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Equipment, len(r.store.equipment))
	copy(out, r.store.equipment)
	return out, nil
}

// ROI derives total cost of ownership from the unit's recorded cost
// components.
func (r *EquipmentReader) ROI(_ context.Context, eq domain.Equipment) (domain.EquipmentROI, error) {
	return domain.EquipmentROI{
		TotalCostOfOwnership: eq.PurchasePrice + eq.MaintenanceCost + eq.FuelCost,
	}, nil
}

// DemoStore returns a store seeded with a small three-field farm, used
// by the demo profile and integration tests.
func DemoStore() *Store {
	s := NewStore()
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	s.SetFields([]domain.Field{
		{ID: "f1", Name: "North Field", CropType: "corn", Size: 120, Status: "active"},
		{ID: "f2", Name: "South Field", CropType: "wheat", Size: 80, Status: "active"},
		{ID: "f3", Name: "Creek Bottom", CropType: "soybeans", Size: 45, Status: "active"},
	})
	s.SetTasks([]domain.Task{
		{ID: "t1", FieldID: "f1", Type: "planting", Status: domain.TaskStatusCompleted,
			CreatedAt: lastMonth, SupplyCost: 4200, LaborCost: 1600},
		{ID: "t2", FieldID: "f2", Type: "fertilizing", Status: domain.TaskStatusCompleted,
			CreatedAt: lastMonth.AddDate(0, 0, 4), SupplyCost: 2800, LaborCost: 900},
		{ID: "t3", FieldID: "f1", Type: "irrigation", Status: domain.TaskStatusInProgress,
			CreatedAt: now.AddDate(0, 0, -6), LaborCost: 450},
		{ID: "t4", FieldID: "f3", Type: "scouting", Status: domain.TaskStatusPending,
			CreatedAt: now.AddDate(0, 0, -2)},
	})
	s.SetActivities([]domain.Activity{
		{ID: "a1", FieldID: "f1", Type: domain.ActivityHarvest,
			Timestamp: now.AddDate(0, 0, -10), YieldAmount: 17800},
		{ID: "a2", FieldID: "f1", Type: domain.ActivityYieldMeasurement,
			Timestamp: now.AddDate(0, 0, -24), YieldAmount: 16900},
		{ID: "a3", FieldID: "f2", Type: domain.ActivityHarvest,
			Timestamp: now.AddDate(0, 0, -12), YieldAmount: 4600},
		{ID: "a4", FieldID: "f2", Type: "tillage", Timestamp: now.AddDate(0, 0, -40)},
	})
	s.SetEquipment([]domain.Equipment{
		{ID: "e1", Name: "John Deere 8R", Type: "tractor", TotalHours: 640,
			UtilizationRate: 72, PurchasePrice: 310000, MaintenanceCost: 8400, FuelCost: 5200},
		{ID: "e2", Name: "Case IH 250", Type: "combine", TotalHours: 380,
			UtilizationRate: 54, PurchasePrice: 420000, MaintenanceCost: 11000, FuelCost: 7600},
	})
	return s
}
