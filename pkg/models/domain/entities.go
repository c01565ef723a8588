package domain

import "time"

// TaskStatus tracks the lifecycle of a scheduled unit of work.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Activity types that carry yield observations.
const (
	ActivityHarvest          = "harvest"
	ActivityYieldMeasurement = "yield_measurement"
)

// Field is a unit of farmland with a crop type and acreage.
type Field struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	CropType string  `json:"cropType"` // corn | wheat | soybeans | ...
	Size     float64 `json:"size"`     // acres, > 0
	Status   string  `json:"status"`
}

// Task is a scheduled or completed unit of work tied to a field.
// Cost fields are optional and default to zero when the farm has no
// bookkeeping for the task.
type Task struct {
	ID           string     `json:"id"`
	FieldID      string     `json:"fieldId"`
	Type         string     `json:"type"`
	Status       TaskStatus `json:"status"`
	AssignedDate *time.Time `json:"assignedDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	SupplyCost   float64    `json:"supplyCost,omitempty"`
	LaborCost    float64    `json:"laborCost,omitempty"`
	Cost         float64    `json:"cost,omitempty"`
}

// EffectiveDate is the date a task is attributed to when filtering by a
// report window: the assigned date when present, creation time otherwise.
func (t Task) EffectiveDate() time.Time {
	if t.AssignedDate != nil {
		return *t.AssignedDate
	}
	return t.CreatedAt
}

// Activity is a logged agronomic event tied to a field and timestamp.
// YieldAmount is only meaningful for harvest / yield_measurement entries.
type Activity struct {
	ID          string    `json:"id"`
	FieldID     string    `json:"fieldId"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	YieldAmount float64   `json:"yieldAmount,omitempty"` // bushels
}

// YieldBearing reports whether the activity carries a usable yield
// observation.
func (a Activity) YieldBearing() bool {
	return (a.Type == ActivityHarvest || a.Type == ActivityYieldMeasurement) && a.YieldAmount > 0
}

// Equipment is a machine with usage meters and cost-of-ownership inputs.
type Equipment struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	TotalHours      float64 `json:"totalHours"`
	UtilizationRate float64 `json:"utilizationRate"` // percent, 0..100
	PurchasePrice   float64 `json:"purchasePrice,omitempty"`
	MaintenanceCost float64 `json:"maintenanceCost,omitempty"`
	FuelCost        float64 `json:"fuelCost,omitempty"`
}

// EquipmentROI is the slice of the ROI capability the reporting engine
// consumes: everything else the equipment collaborator computes stays
// on its side of the boundary.
type EquipmentROI struct {
	TotalCostOfOwnership float64 `json:"totalCostOfOwnership"`
}
