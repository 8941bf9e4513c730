package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forms/internal/config"
	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/schema"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┬─┐┌┬┐┬┌─┬┌┬┐
  ├┤ │ │├┬┘│││├┴┐│ │
  └  └─┘┴└─┴ ┴┴ ┴┴ ┴
`

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "formkit",
		Short: "Declarative forms rendered on the server",
		Long: `formkit turns a form definition (YAML or JSON) into validated,
server-rendered HTML.

  • Check a definition for mistakes
  • Render a form for a given set of values
  • Preview it live in the browser
  • Publish static snapshots to S3 or a directory`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		checkCmd(),
		renderCmd(),
		serveCmd(),
		publishCmd(),
		schemaCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if len(errors.All(err)) > 0 {
			errors.PrintError(err)
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// loadDefinition reads the project config and the definition named by args,
// falling back to the configured definition.
func loadDefinition(args []string) (*config.Config, *schema.Definition, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, nil, err
	}
	path := cfg.DefinitionPath()
	if len(args) > 0 {
		path = args[0]
	}
	def, err := schema.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, def, nil
}

// printBanner prints the formkit ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
