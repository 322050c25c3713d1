package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unital-labs/unital-cli/internal/core/ports/driving"
)

var evalCmd = &cobra.Command{
	Use:   "eval [value] [units] [op] [value] [units]",
	Short: "Evaluate unit-aware arithmetic",
	Long: `Evaluate a binary operation over two quantities.

Operators: + - * / // ^

The right-hand units may be omitted for a bare number, which the
arithmetic policy must allow for * and / (see 'unital settings').
The exponent of ^ is always a bare number.

Examples:
  unital eval 2 kg + 3 kg
  unital eval 2 kg '*' 3 m/s^2
  unital eval 3 m ^ 2`,
	Args: cobra.RangeArgs(4, 5),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	lhsValue, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid left value %q: %w", args[0], err)
	}

	lhs := driving.Operand{Value: lhsValue, Units: args[1]}
	operator := args[2]

	rhsValue, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid right value %q: %w", args[3], err)
	}

	rhs := driving.Operand{Value: rhsValue}
	if len(args) == 5 {
		rhs.Units = args[4]
	}

	result, err := calculatorService.Evaluate(cmd.Context(), lhs, operator, rhs)
	if err != nil {
		return err
	}

	cmd.Println(result.String())
	return nil
}
