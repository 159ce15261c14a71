package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

var (
	relatedParents  bool
	relatedChildren bool
)

var relatedCmd = &cobra.Command{
	Use:   "related <name>",
	Short: "Show relationships of a skill",
	Long: `List the skills related to the named skill. Use --parents or
--children to walk the hierarchy instead.

Examples:
  skillgraph related React
  skillgraph related --parents React
  skillgraph related --children JavaScript`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func init() {
	rootCmd.AddCommand(relatedCmd)

	relatedCmd.Flags().BoolVarP(&relatedParents, "parents", "p", false, "List parent skills")
	relatedCmd.Flags().BoolVarP(&relatedChildren, "children", "k", false, "List child skills")
}

func runRelated(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	name := args[0]
	var skills []*taxonomy.Skill
	switch {
	case relatedParents:
		skills = store.Parents(name)
	case relatedChildren:
		skills = store.Children(name)
	default:
		skills = store.Related(name)
	}

	if len(skills) == 0 {
		fmt.Printf("%sno results for %q%s\n", colorYellow, name, colorReset)
		return nil
	}
	for _, skill := range skills {
		fmt.Printf("%s%s%s  (%s / %s)\n", colorCyan, skill.CanonicalName, colorReset, skill.Category, skill.Subcategory)
	}
	return nil
}
