package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/partita/mxml"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report structural problems and duration advisories",
	Long: `check parses a document and reports notes whose displayed type and
dots disagree with their integer duration under the active divisions.
Durations are authoritative; disagreements are advisories, not errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := loadScore(args)
		if err != nil {
			return err
		}
		if err := score.Validate(); err != nil {
			return err
		}
		mismatches := mxml.CheckDurations(score)
		for _, m := range mismatches {
			fmt.Fprintln(os.Stderr, m.String())
		}
		if len(mismatches) > 0 {
			fmt.Fprintf(os.Stderr, "%d duration advisory(ies)\n", len(mismatches))
		} else {
			fmt.Fprintln(os.Stderr, "ok")
		}
		return nil
	},
}
