package main

import (
	"github.com/spf13/cobra"

	fv "github.com/Gobd/fieldvalidation"
)

// EvalResult is the feedback for one value.
type EvalResult struct {
	Value       string       `json:"value"`
	Status      fv.Status    `json:"status"`
	Valid       bool         `json:"valid"`
	Message     string       `json:"message,omitempty"`
	Checklist   fv.Checklist `json:"checklist"`
	Touched     []string     `json:"touched"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

func evalCmd(opts *globalOptions) *cobra.Command {
	var (
		fieldType string
		showAll   bool
	)

	cmd := &cobra.Command{
		Use:   "eval VALUE...",
		Short: "Evaluate values in order on one field",
		Long: `Evaluate each value in turn on a single field instance, as if a user typed
them one after another. Rules that fail on an earlier value stay touched for
the later ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseFieldType(fieldType)
			if err != nil {
				return err
			}
			e, err := opts.engine()
			if err != nil {
				return err
			}

			results := evaluateSequence(e.NewField(t), args, showAll)
			return writeResults(cmd.OutOrStdout(), opts.output, results)
		},
	}

	cmd.Flags().StringVarP(&fieldType, "type", "t", fv.Text.String(), "Field type")
	cmd.Flags().BoolVar(&showAll, "show-all", false, "List optional rules even when untouched")

	return cmd
}

func evaluateSequence(f *fv.Field, values []string, showAll bool) []EvalResult {
	results := make([]EvalResult, 0, len(values))
	for _, value := range values {
		res := f.Update(value)
		results = append(results, EvalResult{
			Value:       value,
			Status:      f.Status(),
			Valid:       res.Valid,
			Message:     f.Message(),
			Checklist:   f.Checklist(showAll),
			Touched:     f.State().Touched.IDs(),
			Suggestions: f.Suggestions(),
		})
	}
	return results
}
