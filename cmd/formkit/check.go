package main

import (
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [definition]",
		Short: "Validate a form definition",
		Long: `Parse a form definition and report every configuration mistake:
empty or duplicate slugs, duplicate options, choice fields without
options, unknown kinds and invalid rules.

Examples:
  formkit check
  formkit check signup.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, def, err := loadDefinition(args)
			if err != nil {
				return err
			}
			success("%s: %d fields OK", def.Source, len(def.Fields))
			return nil
		},
	}
}
