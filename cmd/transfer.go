package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <from> <to>",
	Short: "Score skill transferability",
	Long: `Compute the directional transferability score between two skills.

Examples:
  skillgraph transfer Vue.js React
  skillgraph transfer Python JavaScript`,
	Args: cobra.ExactArgs(2),
	RunE: runTransfer,
}

func init() {
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	score := store.Transferability(args[0], args[1])
	fmt.Printf("%s → %s: %s%.2f%s\n", args[0], args[1], colorBold, score, colorReset)
	return nil
}
