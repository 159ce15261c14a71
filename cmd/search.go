package cmd

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/index"
	"github.com/adalundhe/skillgraph/core/taxonomy"
)

var (
	searchLimit    int
	searchRanked   bool
	searchCategory string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by name, alias, or tag",
	Long: `Search the taxonomy. The default match is a case-insensitive substring
test over canonical names, aliases, and tags. With --ranked the query runs
against a full-text index and results are ordered by relevance.

Examples:
  skillgraph search react
  skillgraph search --ranked "frontend framework"
  skillgraph search --category "tech*" sql`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of results (0 uses the configured default)")
	searchCmd.Flags().BoolVarP(&searchRanked, "ranked", "R", false, "Rank results with the full-text index")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "g", "", "Filter results by category glob pattern")
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.SearchLimit
	}

	var filter glob.Glob
	if searchCategory != "" {
		filter, err = glob.Compile(searchCategory)
		if err != nil {
			return fmt.Errorf("invalid category pattern %q: %w", searchCategory, err)
		}
	}

	if searchRanked || cfg.RankedSearch {
		return runRankedSearch(cmd.Context(), store, args[0], limit, filter)
	}

	results := store.Search(args[0], limit)
	for _, skill := range results {
		if filter != nil && !filter.Match(skill.Category) {
			continue
		}
		printSkill(skill, 0)
	}
	if len(results) == 0 {
		fmt.Printf("%sno results%s\n", colorYellow, colorReset)
	}
	return nil
}

func runRankedSearch(ctx context.Context, store *taxonomy.Store, query string, limit int, filter glob.Glob) error {
	idx, err := index.New(store)
	if err != nil {
		return err
	}
	defer idx.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	results, err := idx.Query(ctx, query, limit)
	if err != nil {
		return err
	}

	for _, result := range results {
		if filter != nil && !filter.Match(result.Skill.Category) {
			continue
		}
		printSkill(result.Skill, result.Score)
	}
	if len(results) == 0 {
		fmt.Printf("%sno results%s\n", colorYellow, colorReset)
	}
	return nil
}

func printSkill(skill *taxonomy.Skill, score float64) {
	if score > 0 {
		fmt.Printf("%s%s%s  (%s / %s)  %s%.3f%s\n",
			colorCyan, skill.CanonicalName, colorReset,
			skill.Category, skill.Subcategory,
			colorBold, score, colorReset)
		return
	}
	fmt.Printf("%s%s%s  (%s / %s)\n",
		colorCyan, skill.CanonicalName, colorReset,
		skill.Category, skill.Subcategory)
}
