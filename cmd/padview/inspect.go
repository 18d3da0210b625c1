package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padview/padview/internal/inspect"
)

var inspectPolicy string

var inspectCmd = &cobra.Command{
	Use:     "inspect [file.rec]",
	Short:   "Compute field offsets, total size, and padding",
	Aliases: []string{"in"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectPolicy, "policy", "declared", "layout policy: declared or optimized")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	policy, err := inspect.ParsePolicy(inspectPolicy)
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
		fmt.Println(renderLayout(rec.Name, policy, rec.Fields, res))
	}
	return nil
}
