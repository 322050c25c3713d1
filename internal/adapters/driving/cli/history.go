package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded conversions",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	conversions, err := conversionService.History(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(conversions) == 0 {
		cmd.Println("No conversions recorded.")
		return nil
	}

	for _, conv := range conversions {
		cmd.Printf("%s  %v %s = %v %s (%s)\n",
			conv.ConvertedAt.Local().Format("2006-01-02 15:04"),
			conv.Input, conv.FromUnit, conv.Output, conv.ToUnit, conv.Family)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if conversionService == nil {
		return errors.New("conversion service not configured")
	}

	if err := conversionService.ClearHistory(cmd.Context()); err != nil {
		return err
	}

	cmd.Println("History cleared.")
	return nil
}
