package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between units",
	Long: `Convert a value from one unit to another within the same family.

Unit names, symbols and aliases all work, including SI-prefixed
variants of prefixable units.

Examples:
  unital convert 5 km mi
  unital convert 2.5 pound kg
  unital convert 1 btu J`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	conv, err := conversionService.Convert(cmd.Context(), value, args[1], args[2])
	if err != nil {
		return err
	}

	if convertJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(conv)
	}

	cmd.Printf("%v %s = %v %s\n", conv.Input, conv.FromUnit, conv.Output, conv.ToUnit)
	return nil
}
