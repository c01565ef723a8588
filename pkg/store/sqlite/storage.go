// Package sqlite serves the entity reader interfaces from an embedded
// sqlite farm database.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const fieldsSchema = `
	CREATE TABLE IF NOT EXISTS fields (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		crop_type TEXT NOT NULL,
		size REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'active'
	);
`

const tasksSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		field_id TEXT,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		assigned_date TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL,
		due_date TIMESTAMP NULL,
		supply_cost REAL NOT NULL DEFAULT 0,
		labor_cost REAL NOT NULL DEFAULT 0,
		cost REAL NOT NULL DEFAULT 0
	);
`

const activitiesSchema = `
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		field_id TEXT,
		type TEXT NOT NULL,
		timestamp TIMESTAMP NOT NULL,
		yield_amount REAL NOT NULL DEFAULT 0
	);
`

const equipmentSchema = `
	CREATE TABLE IF NOT EXISTS equipment (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		total_hours REAL NOT NULL DEFAULT 0,
		utilization_rate REAL NOT NULL DEFAULT 0,
		purchase_price REAL NOT NULL DEFAULT 0,
		maintenance_cost REAL NOT NULL DEFAULT 0,
		fuel_cost REAL NOT NULL DEFAULT 0
	);
`

var bootQueries = []string{
	fieldsSchema,
	tasksSchema,
	activitiesSchema,
	equipmentSchema,
}

type Settings struct {
	DbPath string // file path or ":memory:"
}

// NewDB opens the farm database and ensures the schema exists.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return db, nil
}
