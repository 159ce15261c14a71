package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/analysis"
)

var assessCmd = &cobra.Command{
	Use:   "assess <skill> <context>...",
	Short: "Estimate proficiency level from a description of experience",
	Long: `Score free-text context against a skill's proficiency markers and
report the best-matching level.

Examples:
  skillgraph assess React "Built simple todo app following tutorial"
  skillgraph assess Python "Designed and scaled production ML pipelines"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	skillName := args[0]
	context := strings.Join(args[1:], " ")

	level, ok := analysis.NewAnalyzer(store).AssessProficiency(skillName, context)
	if !ok {
		fmt.Printf("%scould not determine proficiency for %q%s\n", colorYellow, skillName, colorReset)
		return nil
	}
	fmt.Printf("%s: %s%s%s\n", skillName, colorGreen, level, colorReset)
	return nil
}
