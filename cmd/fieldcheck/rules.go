package main

import (
	"github.com/spf13/cobra"

	fv "github.com/Gobd/fieldvalidation"
)

func rulesCmd(opts *globalOptions) *cobra.Command {
	var fieldType string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules of a field type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseFieldType(fieldType)
			if err != nil {
				return err
			}
			e, err := opts.engine()
			if err != nil {
				return err
			}
			return writeRules(cmd.OutOrStdout(), opts.output, e.Registry().RulesFor(t).Rules())
		},
	}

	cmd.Flags().StringVarP(&fieldType, "type", "t", fv.Text.String(), "Field type")

	return cmd
}
