package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show taxonomy statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVarP(&statsJSON, "json", "j", false, "Emit JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	stats := store.Statistics()

	if statsJSON {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	fmt.Printf("%sTotal skills:%s   %d\n", colorBold, colorReset, stats.TotalSkills)
	fmt.Printf("%sCategories:%s     %d\n", colorBold, colorReset, stats.Categories)
	fmt.Printf("%sSubcategories:%s  %d\n", colorBold, colorReset, stats.Subcategories)
	fmt.Printf("%sTotal aliases:%s  %d\n", colorBold, colorReset, stats.TotalAliases)
	fmt.Printf("%sAvg transfer links:%s %.1f\n", colorBold, colorReset, stats.AverageTransferabilityLinks)

	fmt.Printf("%sBy demand:%s\n", colorBold, colorReset)
	for _, demand := range taxonomy.Demands {
		if count := stats.DemandDistribution[demand]; count > 0 {
			fmt.Printf("  %-10s %d\n", demand.Display(), count)
		}
	}
	return nil
}
