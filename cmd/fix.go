package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/taxonomy"
	"github.com/adalundhe/skillgraph/core/validate"
)

var fixWrite bool

var fixCmd = &cobra.Command{
	Use:   "fix [file]",
	Short: "Remove dangling references from a taxonomy document",
	Long: `Drop references to skills that do not exist in the document: dangling
parents, children, related skills, prerequisites, and transferability
targets. By default the repaired document is printed; --write saves it
back in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().BoolVarP(&fixWrite, "write", "w", false, "Write the repaired document back to the file")
}

func runFix(cmd *cobra.Command, args []string) error {
	path := cfg.TaxonomyPath
	if len(args) == 1 {
		path = args[0]
	}

	doc, err := taxonomy.LoadDocument(path)
	if err != nil {
		return err
	}

	fixed := validate.Repair(doc, slog.Default())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if fixWrite {
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return err
		}
		fmt.Printf("%s✓ fixed %d field(s), saved %s%s\n", colorGreen, fixed, path, colorReset)
		return nil
	}

	os.Stdout.Write(append(data, '\n'))
	fmt.Fprintf(os.Stderr, "%sfixed %d field(s)%s\n", colorGreen, fixed, colorReset)
	return nil
}
