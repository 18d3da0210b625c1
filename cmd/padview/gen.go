package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padview/padview/internal/codegen"
	"github.com/padview/padview/internal/inspect"
)

var genPolicy string

var genCmd = &cobra.Command{
	Use:   "gen [file.rec]",
	Short: "Emit a Go struct declaration in the laid-out field order",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGen,
}

func init() {
	genCmd.Flags().StringVar(&genPolicy, "policy", "optimized", "layout policy: declared or optimized")
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	policy, err := inspect.ParsePolicy(genPolicy)
	if err != nil {
		return err
	}

	recs, err := loadRecords(args)
	if err != nil {
		return err
	}

	for _, rec := range recs {
		res, err := inspect.Compute(rec.Fields, policy)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}
		fmt.Print(codegen.NewGenerator(rec.Name, rec.Fields, res).Generate())
	}
	return nil
}
