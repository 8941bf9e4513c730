package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forms/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		name   string
		sets   []string
		bucket string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "publish [definition]",
		Short: "Publish a static snapshot of a form",
		Long: `Render the form as a standalone HTML page and store it in an S3
bucket, or in a local directory when no bucket is configured.

Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  formkit publish signup.yaml --dir=public
  formkit publish signup.yaml --bucket=my-forms --name=signup-v2
  formkit publish --set email=ada@example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, def, err := loadDefinition(args)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if dir != "" {
				cfg.Publish.Bucket = ""
				cfg.Publish.Output = dir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if name == "" {
				base := filepath.Base(def.Source)
				name = strings.TrimSuffix(base, filepath.Ext(base))
			}

			state, err := buildState(def, sets, time.Now())
			if err != nil {
				return err
			}
			html, err := publish.Snapshot(def, state, cfg.FormClasses())
			if err != nil {
				return err
			}

			var p publish.Publisher
			if cfg.Publish.Bucket != "" {
				client := publish.NewS3Client(cfg.Publish.Region, cfg.Publish.Endpoint, cfg.Publish.PathStyle)
				p = publish.NewS3Publisher(client, cfg.Publish.Bucket, cfg.Publish.Prefix)
			} else {
				p, err = publish.NewDirPublisher(cfg.OutputPath())
				if err != nil {
					return err
				}
			}

			where, err := p.Publish(cmd.Context(), name, html)
			if err != nil {
				return err
			}
			if cfg.Publish.Bucket != "" {
				where = "s3://" + cfg.Publish.Bucket + "/" + where
			}
			success("Published %s (%d bytes)", where, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Snapshot name (default: definition file name)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a field value as slug=value (repeatable)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from formkit.json)")
	cmd.Flags().StringVar(&dir, "dir", "", "Write to a local directory instead of S3")

	return cmd
}
