package store

import (
	"fmt"

	"github.com/farm-tools/agro-atlas/pkg/services/registry"
	"github.com/farm-tools/agro-atlas/pkg/services/sources"
	"github.com/farm-tools/agro-atlas/pkg/store/memory"
	"github.com/farm-tools/agro-atlas/pkg/store/sqlite"
)

// OpenReaders wires a profile to a concrete reader set.
func OpenReaders(profile registry.Profile) (sources.Readers, error) {
	switch profile.Driver {
	case "demo", "memory":
		s := memory.DemoStore()
		return sources.Readers{
			Fields:     s.Fields(),
			Tasks:      s.Tasks(),
			Activities: s.Activities(),
			Equipment:  s.Equipment(),
		}, nil
	case "sqlite":
		db, err := sqlite.NewDB(sqlite.Settings{DbPath: profile.DSN})
		if err != nil {
			return sources.Readers{}, err
		}
		s, err := sqlite.NewStore(db)
		if err != nil {
			return sources.Readers{}, err
		}
		return sources.Readers{
			Fields:     s.Fields(),
			Tasks:      s.Tasks(),
			Activities: s.Activities(),
			Equipment:  s.Equipment(),
		}, nil
	default:
		return sources.Readers{}, fmt.Errorf("unsupported driver %q in profile %q", profile.Driver, profile.Name)
	}
}
