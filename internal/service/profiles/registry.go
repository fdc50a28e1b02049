package profiles

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"EconPulse/internal/domain/models"
	drepo "EconPulse/internal/domain/repository"

	"gopkg.in/yaml.v3"
)

// ErrNoProfile is returned when an entity code is unknown.
var ErrNoProfile = errors.New("profiles: unknown entity code")

// Registry holds the static entity reference data. Loaded once at startup,
// read-only afterwards, so lookups need no locking.
type Registry struct {
	byCode map[string]models.EntityProfile
}

type profilesFile struct {
	Entities []models.EntityProfile `yaml:"entities"`
}

// Load reads the bundled profiles YAML file.
func Load(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profiles read: %w", err)
	}

	var pf profilesFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, fmt.Errorf("profiles parse: %w", err)
	}
	if len(pf.Entities) == 0 {
		return nil, fmt.Errorf("profiles: no entities in %s", path)
	}

	return FromProfiles(pf.Entities), nil
}

// FromProfiles builds a registry from an in-memory profile list.
func FromProfiles(entities []models.EntityProfile) *Registry {
	m := make(map[string]models.EntityProfile, len(entities))
	for _, p := range entities {
		m[p.Code] = p
	}
	return &Registry{byCode: m}
}

func (r *Registry) Get(code string) (models.EntityProfile, error) {
	p, ok := r.byCode[code]
	if !ok {
		return models.EntityProfile{}, fmt.Errorf("%w: %s", ErrNoProfile, code)
	}
	return p, nil
}

// Codes returns all entity codes sorted for deterministic iteration.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

var _ drepo.Profiles = (*Registry)(nil)
