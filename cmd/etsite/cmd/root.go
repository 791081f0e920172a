package cmd

import (
	"os"

	"github.com/everythingtalent/etsite/internal/app"
	"github.com/everythingtalent/etsite/internal/config"
	"github.com/everythingtalent/etsite/internal/logging"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var (
	configFile string
	cfg        *config.Config

	// newInjector builds the services for a command run.
	newInjector func(*config.Config) do.Injector = app.New
)

var rootCmd = &cobra.Command{
	Use:   "etsite",
	Short: "Everything Talent about site",
	Long: `etsite serves, exports and publishes the Everything Talent About page.

Available commands:
  serve      Run the HTTP server
  export     Write the page as a static site
  publish    Export and upload the site to an S3 bucket
  version    Print the version

Configuration is read from the environment (ETSITE_ prefix, .env supported)
and an optional config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.New(cfg.Log.Format, cfg.Log.Level)
		return nil
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
}
