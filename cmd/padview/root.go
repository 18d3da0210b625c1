package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/padview/padview/internal/parser"
)

var (
	flagFields  []string
	flagRecord  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "padview",
	Short:        "Inspect record memory layouts: offsets, padding, and field reordering",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			if l, err := zap.NewDevelopment(); err == nil {
				parser.SetLogger(l)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&flagFields, "fields", nil, "inline field specs as name:size[:align]")
	rootCmd.PersistentFlags().StringVar(&flagRecord, "record", "", "only this record from the description file")
}

// loadRecords resolves the input surface: inline --fields specs or a
// record description file argument.
func loadRecords(args []string) ([]parser.RecordSpec, error) {
	if len(flagFields) > 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("--fields and a description file are mutually exclusive")
		}
		fields, err := parser.ParseTriples(flagFields)
		if err != nil {
			return nil, err
		}
		return []parser.RecordSpec{{Name: "Record", Fields: fields}}, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("expected a description file or --fields")
	}

	recs, err := parser.ParseFile(args[0])
	if err != nil {
		return nil, err
	}
	if flagRecord == "" {
		return recs, nil
	}
	for _, r := range recs {
		if r.Name == flagRecord {
			return []parser.RecordSpec{r}, nil
		}
	}
	return nil, fmt.Errorf("record %q not found in %s", flagRecord, args[0])
}
