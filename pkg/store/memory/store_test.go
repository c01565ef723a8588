package memory

import (
	"context"
	"testing"

	"github.com/farm-tools/agro-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReadersReturnCopies(t *testing.T) {
	store := NewStore()
	store.SetFields([]domain.Field{{ID: "f1", Name: "North Field"}})

	fields, err := store.Fields().GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 1)

	fields[0].Name = "mutated"

	again, err := store.Fields().GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "North Field", again[0].Name)
}

func TestEquipmentReader_ROI(t *testing.T) {
	store := NewStore()
	eq := domain.Equipment{ID: "e1", PurchasePrice: 310000, MaintenanceCost: 8400, FuelCost: 5200}

	roi, err := store.Equipment().ROI(context.Background(), eq)
	require.NoError(t, err)
	assert.Equal(t, 323600.0, roi.TotalCostOfOwnership)
}

func TestDemoStore(t *testing.T) {
	store := DemoStore()
	ctx := context.Background()

	fields, err := store.Fields().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, fields, 3)

	tasks, err := store.Tasks().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	activities, err := store.Activities().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, 4)

	equipment, err := store.Equipment().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, equipment, 2)
}
