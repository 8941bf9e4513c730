package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forms/pkg/schema"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the definition format",
		Long: `Print a JSON Schema describing form definition files. Point your
editor at it to get completion and validation while writing definitions.

Examples:
  formkit schema > formkit.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(schema.JSONSchema())
		},
	}
}
