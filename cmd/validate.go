package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/taxonomy"
	"github.com/adalundhe/skillgraph/core/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a taxonomy document",
	Long: `Check a taxonomy document against the data-integrity rules the store
assumes: unique identities, resolvable references, complete proficiency
data, and consistent categorization. Exits non-zero when issues are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := cfg.TaxonomyPath
	if len(args) == 1 {
		path = args[0]
	}

	doc, err := taxonomy.LoadDocument(path)
	if err != nil {
		return err
	}

	issues := validate.Document(doc)
	if len(issues) == 0 {
		skills := doc.Skills()
		fmt.Printf("%s✓ %s is valid%s (%d skills)\n", colorGreen, path, colorReset, len(skills))
		return nil
	}

	for _, issue := range issues {
		fmt.Printf("%s✗ %s%s\n", colorRed, issue.String(), colorReset)
	}
	return fmt.Errorf("%d validation issue(s) in %s", len(issues), path)
}
