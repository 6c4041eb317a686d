package main

import (
	"github.com/spf13/cobra"

	"github.com/Gobd/fieldvalidation/openapi"
)

func schemaCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the rulesets as OpenAPI component schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.engine()
			if err != nil {
				return err
			}
			schemas, err := openapi.Components(e.Registry())
			if err != nil {
				return err
			}
			b, err := openapi.MarshalComponents(schemas)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}
}
