// internal/cli/sources.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfwatch/harvest/internal/harvest"
	"github.com/shelfwatch/harvest/internal/ui"
	"github.com/shelfwatch/harvest/pkg/models"
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the fetch tasks a run would execute",
	Long: `Sources prints the task table the current configuration produces, one line
per fetch, without touching the network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("application not initialized")
		}

		tasks := harvest.Tasks(a.Config)

		fmt.Println(ui.Bold("Configured tasks"))
		seen := map[models.SourceID]bool{}
		for _, t := range tasks {
			seen[t.Source] = true
			fmt.Printf("  %-22s  %-28s  %s\n", t.Source, t.Label, t.URL)
		}
		fmt.Printf("\n%d tasks across %d sources\n", len(tasks), len(seen))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
