package cmd

import (
	"fmt"

	"github.com/everythingtalent/etsite/internal/export"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the page as a static site",
	Long: `Render the About page, its values fragment and the static assets
into a directory ready for any static host.

Examples:
  etsite export
  etsite export --out public_html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := do.Invoke[*export.Exporter](newInjector(cfg))
		if err != nil {
			return err
		}
		files, err := e.Export(cmd.Context(), exportOut)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
