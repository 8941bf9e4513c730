package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forms/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve [definition]",
		Short: "Preview a form live in the browser",
		Long: `Start the preview server. Every browser tab gets its own form
state; edits are validated on the server as you type.

The definition file is watched and reloaded on change unless --no-watch
is given or preview.watch is false in formkit.json.

Examples:
  formkit serve
  formkit serve signup.yaml --port=9000
  formkit serve --host=0.0.0.0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, def, err := loadDefinition(args)
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if noWatch {
				cfg.Preview.Watch = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := preview.New(def, preview.Config{
				Addr:    cfg.PreviewAddress(),
				Secret:  []byte(cfg.Preview.Secret),
				Classes: cfg.FormClasses(),
				Logger:  slog.Default(),
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Preview.Watch {
				if err := srv.Watch(ctx, def.Source); err != nil {
					slog.Warn("definition watch unavailable", "error", err)
				}
			}

			printBanner()
			fmt.Println("  serve")
			fmt.Println()
			info("Form:     %s (%d fields)", def.Source, len(def.Fields))
			info("Local:    http://%s", cfg.PreviewAddress())
			info("Metrics:  http://%s/metrics", cfg.PreviewAddress())
			fmt.Println()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from formkit.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from formkit.json)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the definition on change")

	return cmd
}
