package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/analysis"
)

var (
	pathSkills []string
	pathRole   string
	pathJSON   bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Plan a learning path toward a target role",
	Long: `Rank the skills a target role requires that are not yet in the current
skill set, ordered by priority. Role names match exactly.

Examples:
  skillgraph path --skills JavaScript,React --role "Frontend Developer"
  skillgraph path -s Python -s SQL --role "Data Engineer" --json`,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringSliceVarP(&pathSkills, "skills", "s", nil, "Current skill names")
	pathCmd.Flags().StringVarP(&pathRole, "role", "r", "", "Target role name (exact match)")
	pathCmd.Flags().BoolVarP(&pathJSON, "json", "j", false, "Emit JSON")
	pathCmd.MarkFlagRequired("role")
}

func runPath(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	recommendations := analysis.NewAnalyzer(store).LearningPath(pathSkills, pathRole)

	if pathJSON {
		return json.NewEncoder(os.Stdout).Encode(recommendations)
	}

	if len(recommendations) == 0 {
		fmt.Printf("%snothing to learn for role %q%s\n", colorYellow, pathRole, colorReset)
		return nil
	}
	for _, rec := range recommendations {
		color := colorGreen
		switch rec.Priority {
		case analysis.PriorityHigh:
			color = colorRed
		case analysis.PriorityMedium:
			color = colorYellow
		}
		fmt.Printf("%s[%s]%s %s%s%s (%.1f): %s\n",
			color, rec.Priority, colorReset,
			colorBold, rec.Skill, colorReset,
			rec.PriorityScore, rec.Why)
	}
	return nil
}
