package cmd

import (
	"fmt"

	"github.com/everythingtalent/etsite/internal/export"
	"github.com/everythingtalent/etsite/internal/publish"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var (
	publishBucket string
	publishPrefix string
	publishOut    string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Export and upload the site to an S3 bucket",
	Long: `Export the site and upload every file to an S3 compatible bucket.
Credentials, region and endpoint come from the publish.* configuration.

Examples:
  etsite publish --bucket www.example.com
  etsite publish --bucket www.example.com --prefix preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if publishBucket != "" {
			cfg.Publish.Bucket = publishBucket
		}
		if cmd.Flags().Changed("prefix") {
			cfg.Publish.Prefix = publishPrefix
		}

		i := newInjector(cfg)
		p, err := do.Invoke[*publish.Publisher](i)
		if err != nil {
			return err
		}
		e, err := do.Invoke[*export.Exporter](i)
		if err != nil {
			return err
		}

		files, err := e.Export(cmd.Context(), publishOut)
		if err != nil {
			return err
		}
		keys, err := p.Publish(cmd.Context(), publishOut, files)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published %d objects to s3://%s\n", len(keys), cfg.Publish.Bucket)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishBucket, "bucket", "", "target bucket, overrides publish.bucket")
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "object key prefix, overrides publish.prefix")
	publishCmd.Flags().StringVarP(&publishOut, "out", "o", "dist", "staging directory for the export")
	rootCmd.AddCommand(publishCmd)
}
