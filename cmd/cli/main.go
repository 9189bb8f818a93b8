// ChatLens - Chat Transcript Analysis Tool
//
// ChatLens is a batch analysis tool for exported chat transcripts.
// It parses transcript files into structured messages and reports
// statistics, tracked phrase usage, word frequency and insights.
package main

import (
	"os"

	"github.com/chatlens/chatlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
