package registry

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile names one farm data source. Driver selects the reader
// implementation ("sqlite" or "demo"); DSN is driver specific.
type Profile struct {
	Name   string
	Driver string
	DSN    string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewRegistry loads profiles from an ini file with one section per
// farm profile.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name:   section.Name(),
			Driver: section.Key("driver").String(),
			DSN:    section.Key("dsn").String(),
		})
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	if !r.cfg.HasSection(name) {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}
	section := r.cfg.Section(name)
	if len(section.Keys()) == 0 {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return Profile{
		Name:   name,
		Driver: section.Key("driver").String(),
		DSN:    section.Key("dsn").String(),
	}, nil
}
