package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	familyfile "github.com/unital-labs/unital-cli/internal/adapters/driven/familydata/file"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List unit families and their units",
	Long: `Inspect the registered unit families: the built-in tables plus any
user-defined families under the config directory.`,
	RunE: runFamiliesList,
}

var familiesUnitsCmd = &cobra.Command{
	Use:   "units [family]",
	Short: "List all units of a family",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamiliesUnits,
}

var familiesAliasesCmd = &cobra.Command{
	Use:   "aliases [family]",
	Short: "List the aliases of a family",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamiliesAliases,
}

var familiesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a user-defined family from a TOML file",
	Long: `Validate a TOML family definition and install it into the families
directory. The family is available on the next run.`,
	Args: cobra.ExactArgs(1),
	RunE: runFamiliesImport,
}

// familiesDir overrides the import target directory; empty means the
// loader default.
var familiesDir string

func init() {
	familiesImportCmd.Flags().StringVar(&familiesDir, "dir", "", "families directory (default ~/.unital/families)")
	familiesCmd.AddCommand(familiesUnitsCmd)
	familiesCmd.AddCommand(familiesAliasesCmd)
	familiesCmd.AddCommand(familiesImportCmd)
	rootCmd.AddCommand(familiesCmd)
}

func runFamiliesList(cmd *cobra.Command, _ []string) error {
	if familyRegistry == nil {
		return errors.New("family registry not configured")
	}

	for _, family := range familyRegistry.GetFamilies() {
		cmd.Printf("%-14s standard unit: %s, %d units\n",
			family.Name, family.StandardUnit, len(family.ExpandedUnits()))
	}
	return nil
}

func runFamiliesUnits(cmd *cobra.Command, args []string) error {
	if familyRegistry == nil {
		return errors.New("family registry not configured")
	}

	units, err := familyRegistry.GetUnits(args[0])
	if err != nil {
		return err
	}

	for _, unit := range units {
		cmd.Println(unit)
	}
	return nil
}

func runFamiliesAliases(cmd *cobra.Command, args []string) error {
	if familyRegistry == nil {
		return errors.New("family registry not configured")
	}

	aliases, err := familyRegistry.GetAliases(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	for _, alias := range names {
		cmd.Printf("%s -> %s\n", alias, aliases[alias])
	}
	return nil
}

func runFamiliesImport(cmd *cobra.Command, args []string) error {
	family, err := familyfile.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("invalid family file: %w", err)
	}

	loader, err := familyfile.NewLoader(familiesDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(loader.Dir(), 0700); err != nil {
		return fmt.Errorf("creating families directory: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	target := filepath.Join(loader.Dir(), family.Name+".toml")
	if err := os.WriteFile(target, data, 0600); err != nil {
		return fmt.Errorf("installing family file: %w", err)
	}

	cmd.Printf("Imported family %q to %s\n", family.Name, target)
	return nil
}
