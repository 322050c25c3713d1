package driven

import "github.com/unital-labs/unital-cli/internal/core/domain"

// FamilyLoader loads user-defined unit families from an external
// source, typically TOML files under the configuration directory.
type FamilyLoader interface {
	// Load returns all user-defined families. A missing source is not
	// an error; it returns an empty slice.
	Load() ([]domain.Family, error)
}
