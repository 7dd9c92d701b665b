// partita - MusicXML score-partwise codec tool
//
// Usage:
//
//	partita fmt [file]        Parse a document and re-emit it canonically
//	partita check [file]      Report structural and duration advisories
//	partita roundtrip [file]  Verify double round-trip stability
//	partita unpack [file.mxl] Extract the score from a compressed container
//
// If no file is given, commands read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neumenon/partita/mxml"
)

var rootCmd = &cobra.Command{
	Use:   "partita",
	Short: "MusicXML score-partwise codec",
	Long:  "partita converts between MusicXML score-partwise documents and a typed in-memory score model.",
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

// readInput loads the named file, or stdin when args is empty.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadScore parses either a plain document or, for .mxl paths, a
// compressed container.
func loadScore(args []string) (*mxml.Score, error) {
	if len(args) > 0 && strings.HasSuffix(args[0], ".mxl") {
		return mxml.ReadContainerFile(args[0])
	}
	input, err := readInput(args)
	if err != nil {
		return nil, err
	}
	return mxml.Parse(input)
}
