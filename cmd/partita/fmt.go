package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/partita/mxml"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parse a document and re-emit it canonically",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := loadScore(args)
		if err != nil {
			return err
		}
		doc, err := mxml.Emit(score)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, doc)
		return err
	},
}
