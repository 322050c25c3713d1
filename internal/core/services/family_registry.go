package services

import (
	"fmt"
	"sort"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
	"github.com/unital-labs/unital-cli/internal/families"
	"github.com/unital-labs/unital-cli/internal/logger"
)

// Ensure FamilyRegistry implements the interface.
var _ driving.FamilyRegistry = (*FamilyRegistry)(nil)

// FamilyRegistry provides information about registered unit families
// and the units they contain. Built-in families are always present;
// user-defined families from the loader are layered on top and may
// shadow built-ins by name.
type FamilyRegistry struct {
	byName map[string]domain.Family
	names  []string
}

// NewFamilyRegistry creates a registry holding the built-in families
// plus any families from the loader. The loader may be nil.
func NewFamilyRegistry(loader driven.FamilyLoader) (*FamilyRegistry, error) {
	r := &FamilyRegistry{byName: make(map[string]domain.Family)}

	for _, family := range families.All() {
		r.byName[family.Name] = family
	}

	if loader != nil {
		loaded, err := loader.Load()
		if err != nil {
			return nil, fmt.Errorf("load user families: %w", err)
		}
		for _, family := range loaded {
			if err := family.Validate(); err != nil {
				logger.Info("Skipping invalid family %q: %v", family.Name, err)
				continue
			}
			r.byName[family.Name] = family
		}
	}

	r.names = make([]string, 0, len(r.byName))
	for name := range r.byName {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	return r, nil
}

// GetFamilies returns all registered families sorted by name.
func (r *FamilyRegistry) GetFamilies() []domain.Family {
	result := make([]domain.Family, 0, len(r.names))
	for _, name := range r.names {
		result = append(result, r.byName[name])
	}
	return result
}

// GetFamily returns a family by name.
func (r *FamilyRegistry) GetFamily(name string) (domain.Family, error) {
	if family, ok := r.byName[name]; ok {
		return family, nil
	}
	return domain.Family{}, fmt.Errorf("%w: %s", domain.ErrUnknownFamily, name)
}

// FamilyForUnit returns the family that knows the given unit name or
// alias. Families are consulted in name order so lookup is
// deterministic when a symbol appears in more than one family.
func (r *FamilyRegistry) FamilyForUnit(unit string) (domain.Family, error) {
	for _, name := range r.names {
		if r.byName[name].Knows(unit) {
			return r.byName[name], nil
		}
	}
	return domain.Family{}, fmt.Errorf("%w: no family knows unit %q", domain.ErrUnknownFamily, unit)
}

// GetUnits returns the expanded unit names of a family, sorted.
func (r *FamilyRegistry) GetUnits(family string) ([]string, error) {
	f, err := r.GetFamily(family)
	if err != nil {
		return nil, err
	}

	units := f.ExpandedUnits()
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// GetAliases returns the alias table of a family.
func (r *FamilyRegistry) GetAliases(family string) (map[string]string, error) {
	f, err := r.GetFamily(family)
	if err != nil {
		return nil, err
	}
	return f.ExpandedAliases(), nil
}
