package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <name>...",
	Short: "Normalize skill names to their canonical form",
	Long: `Resolve free-text skill names and aliases to canonical names.

Examples:
  skillgraph normalize react.js
  skillgraph normalize JS Golang K8s`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	for _, name := range args {
		canonical, ok := store.Normalize(name)
		if !ok {
			fmt.Printf("%s%q%s → not found\n", colorYellow, name, colorReset)
			continue
		}
		fmt.Printf("%q → %s%s%s\n", name, colorGreen, canonical, colorReset)
	}
	return nil
}
