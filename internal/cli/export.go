package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Export command flags
var (
	exportSubsystems []string
	exportCategories []string
)

// exportCmd exports the filtered log history without opening the TUI
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered log history to an archive file",
	Long: `Fetches the log history once, applies the given subsystem and
category filters, and writes the result as a text archive. Category
filters apply to the subsystems given with --subsystem; use "-" to
select the uncategorized bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		since := time.Now().Add(-deps.window)

		entries, err := deps.source.Fetch(context.Background(), since)
		if err != nil {
			deps.reconciler.RefreshFailed(1)
			return err
		}
		deps.reconciler.ApplyRefresh(1, entries)

		for _, s := range exportSubsystems {
			deps.reconciler.ToggleSubsystem(s)
		}
		for _, c := range exportCategories {
			if c == "-" {
				c = ""
			}
			for _, s := range exportSubsystems {
				deps.reconciler.ToggleCategory(s, c)
			}
		}

		visible := deps.reconciler.Visible()
		path, err := deps.exporter.WriteFile(exportDir, deps.reconciler.State(), visible, since)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d of %d messages to %s\n", len(visible), deps.reconciler.TotalCount(), path)
		if !deps.reconciler.State().IsEmpty() {
			fmt.Printf("Filter: %s\n", deps.formatter.FilterSummary(deps.reconciler.State()))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportSubsystems, "subsystem", nil, "Subsystem(s) to include (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportCategories, "category", nil, `Category filter(s) for the given subsystems ("-" = uncategorized)`)

	rootCmd.AddCommand(exportCmd)
}
