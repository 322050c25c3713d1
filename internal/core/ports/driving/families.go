package driving

import "github.com/unital-labs/unital-cli/internal/core/domain"

// FamilyRegistry provides information about registered unit families
// and the units they contain.
type FamilyRegistry interface {
	// GetFamilies returns all registered families sorted by name.
	GetFamilies() []domain.Family

	// GetFamily returns a family by name.
	GetFamily(name string) (domain.Family, error)

	// FamilyForUnit returns the family that knows the given unit name
	// or alias.
	FamilyForUnit(unit string) (domain.Family, error)

	// GetUnits returns the expanded unit names of a family, sorted.
	GetUnits(family string) ([]string, error)

	// GetAliases returns the alias table of a family.
	GetAliases(family string) (map[string]string, error)
}
