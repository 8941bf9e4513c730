package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forms/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		sets     []string
		output   string
		page     bool
		pretty   bool
		noEvents bool
	)

	cmd := &cobra.Command{
		Use:   "render [definition]",
		Short: "Render a form to HTML",
		Long: `Render a form definition to HTML for a given set of values.

By default the form element alone is written to stdout; --page wraps it
in a complete document with the default stylesheet.

Examples:
  formkit render signup.yaml
  formkit render signup.yaml --set email=ada@example.com --set terms=true
  formkit render signup.yaml --set topics=news,offers --page -o signup.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, def, err := loadDefinition(args)
			if err != nil {
				return err
			}
			state, err := buildState(def, sets, time.Now())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			r := render.NewRenderer(render.RendererConfig{Pretty: pretty, OmitEventMarkers: noEvents})
			classes := cfg.FormClasses()
			if page {
				return r.RenderPage(w, def.Page(state, classes))
			}
			if err := r.RenderToWriter(w, def.View(state, classes)); err != nil {
				return err
			}
			_, err = io.WriteString(w, "\n")
			return err
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a field value as slug=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&page, "page", false, "Render a complete HTML document")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&noEvents, "no-events", false, "Omit data-on-* event markers")

	return cmd
}
