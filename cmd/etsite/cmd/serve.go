package cmd

import (
	"github.com/everythingtalent/etsite/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve the About page until interrupted.

Examples:
  etsite serve
  etsite serve --addr :3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		s, err := do.Invoke[*server.Server](newInjector(cfg))
		if err != nil {
			return err
		}
		return s.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides server.addr")
	rootCmd.AddCommand(serveCmd)
}
