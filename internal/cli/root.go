// internal/cli/root.go
package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelfwatch/harvest/internal/app"
	"github.com/shelfwatch/harvest/internal/config"
)

// rootCmd is the base command; subcommands attach themselves in their
// init functions.
var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Collect book records from catalog, search and ranked-list sources",
	Long: `Harvest fetches book data concurrently from a paginated catalog, a search
API and a ranked download list, normalizes the records into one collection
and exports them to CSV, JSON or Postgres.`,
	Version: "0.1.0",
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Initialize the application lazily so -h and --version stay cheap.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp() != nil {
			return nil
		}

		cfg, err := config.Load(rootCmd)
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		SetApp(a)
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		a := GetApp()
		if a == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.Close(ctx)
		SetApp(nil)
	}
}
