package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/analysis"
)

var (
	gapsRequired  []string
	gapsCandidate []string
	gapsJSON      bool
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Analyze skill gaps between job requirements and a candidate",
	Long: `Classify required skills against candidate skills into matches,
transferable skills, minor gaps, and critical gaps.

Examples:
  skillgraph gaps --required React,TypeScript,AWS --candidate Vue.js,JavaScript,GCP
  skillgraph gaps -r React -r AWS -n Vue.js -n GCP --json`,
	RunE: runGaps,
}

func init() {
	rootCmd.AddCommand(gapsCmd)

	gapsCmd.Flags().StringSliceVarP(&gapsRequired, "required", "r", nil, "Required skill names")
	gapsCmd.Flags().StringSliceVarP(&gapsCandidate, "candidate", "n", nil, "Candidate skill names")
	gapsCmd.Flags().BoolVarP(&gapsJSON, "json", "j", false, "Emit JSON")
	gapsCmd.MarkFlagRequired("required")
}

func runGaps(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	report := analysis.NewAnalyzer(store).AnalyzeGaps(gapsRequired, gapsCandidate)

	if gapsJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	printNameList("Matches", colorGreen, report.Matches)
	if len(report.Transferable) > 0 {
		fmt.Printf("%sTransferable:%s\n", colorBold, colorReset)
		for _, match := range report.Transferable {
			fmt.Printf("  %s%s%s ← %s (%.2f)\n", colorCyan, match.Required, colorReset, match.Has, match.Transferability)
		}
	}
	printNameList("Minor gaps", colorYellow, report.MinorGaps)
	printNameList("Critical gaps", colorRed, report.CriticalGaps)
	return nil
}

func printNameList(label, color string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("%s%s:%s\n", colorBold, label, colorReset)
	for _, name := range names {
		fmt.Printf("  %s%s%s\n", color, name, colorReset)
	}
}
