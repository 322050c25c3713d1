package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/unital-labs/unital-cli/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse [units]",
	Short: "Parse a unit string and show its term breakdown",
	Long: `Parse a compound unit expression and print each dimension term
with its exponent and SI prefix, plus both rendered notations.

Examples:
  unital parse kg*m/s^2
  unital parse 'km^3/mol'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	quantity, err := calculatorService.Parse(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	terms := quantity.Units()
	cmd.Printf("Input: %s\n", args[0])
	cmd.Println("Terms:")
	for _, term := range terms {
		prefix := "-"
		if term.Prefix != domain.PrefixNone {
			prefix = term.Prefix.String()
		}
		cmd.Printf("  %-12s exponent %-6v prefix %s\n", term.Dim, term.Exponent, prefix)
	}
	cmd.Printf("Fractional:  %s\n", domain.FractionalString(terms))
	cmd.Printf("Exponential: %s\n", domain.ExponentialString(terms))

	return nil
}
