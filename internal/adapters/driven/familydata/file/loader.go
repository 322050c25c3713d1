package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/unital-labs/unital-cli/internal/core/domain"
	"github.com/unital-labs/unital-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.FamilyLoader = (*Loader)(nil)

// familyFile is the TOML shape of a user-defined family.
type familyFile struct {
	Name         string             `toml:"name"`
	StandardUnit string             `toml:"standard_unit"`
	Units        map[string]float64 `toml:"units"`
	Aliases      map[string]string  `toml:"aliases"`
	SIPrefixable []string           `toml:"si_prefixable"`
}

// Loader reads unit families from TOML files in a directory. One file
// defines one family.
type Loader struct {
	dir string
}

// NewLoader creates a loader reading from dir. If dir is empty,
// defaults to ~/.unital/families.
func NewLoader(dir string) (*Loader, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".unital", "families")
	}

	return &Loader{dir: dir}, nil
}

// Dir returns the directory the loader reads from.
func (l *Loader) Dir() string {
	return l.dir
}

// Load returns all families defined in the directory, sorted by file
// name. A missing directory yields an empty slice.
func (l *Loader) Load() ([]domain.Family, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	result := make([]domain.Family, 0, len(names))
	for _, name := range names {
		family, err := LoadFile(filepath.Join(l.dir, name))
		if err != nil {
			return nil, fmt.Errorf("family file %s: %w", name, err)
		}
		result = append(result, family)
	}

	return result, nil
}

// LoadFile parses a single family definition file.
func LoadFile(path string) (domain.Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Family{}, err
	}

	var ff familyFile
	if err := toml.Unmarshal(data, &ff); err != nil {
		return domain.Family{}, err
	}

	family := domain.Family{
		Name:         ff.Name,
		StandardUnit: ff.StandardUnit,
		Units:        ff.Units,
		Aliases:      ff.Aliases,
		SIPrefixable: ff.SIPrefixable,
	}

	if err := family.Validate(); err != nil {
		return domain.Family{}, err
	}

	return family, nil
}
