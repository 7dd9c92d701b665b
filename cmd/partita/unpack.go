package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/partita/mxml"
)

func init() {
	rootCmd.AddCommand(unpackCmd)
}

var unpackCmd = &cobra.Command{
	Use:   "unpack file.mxl",
	Short: "Extract the score from a compressed container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := mxml.ReadContainerFile(args[0])
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
