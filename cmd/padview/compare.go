package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padview/padview/internal/inspect"
)

var compareCmd = &cobra.Command{
	Use:     "compare [file.rec]",
	Short:   "Lay out a record under both policies and show the bytes saved",
	Aliases: []string{"cmp"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	recs, err := loadRecords(args)
	if err != nil {
		return err
	}

	for _, rec := range recs {
		declared, err := inspect.Compute(rec.Fields, inspect.DeclaredOrder)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}
		optimized, err := inspect.Compute(rec.Fields, inspect.CompilerOptimized)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}

		fmt.Println(renderLayout(rec.Name, inspect.DeclaredOrder, rec.Fields, declared))
		fmt.Println(renderLayout(rec.Name, inspect.CompilerOptimized, rec.Fields, optimized))
		fmt.Println(renderSavings(declared, optimized))
	}
	return nil
}
