package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirtools/rolltok/model"
	"github.com/mirtools/rolltok/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <encoding-file>",
	Short: "Inspects a clip encoding",
	Long:  `Inspects a clip encoding`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	encoding := util.ReadBinaryOrPanic[model.ClipEncoding](path)

	var activePitches int
	var activeFrames int
	for p := 0; p < len(encoding.FrameRoll[0]); p++ {
		var frames int
		for t := range encoding.FrameRoll {
			if encoding.FrameRoll[t][p] != 0 {
				frames++
			}
		}
		if frames > 0 {
			activePitches++
			activeFrames += frames
		}
	}

	fmt.Printf("frames: %v\n", len(encoding.FrameRoll))
	fmt.Printf("pitches: %v\n", len(encoding.FrameRoll[0]))
	fmt.Printf("active pitches: %v\n", activePitches)
	fmt.Printf("active frames: %v\n", activeFrames)
	fmt.Printf("clip notes: %v\n", len(encoding.ClipNotes))
	fmt.Printf("tokens (pre-padding): %v\n", encoding.TokensNum)
	fmt.Printf("tokens (fixed): %v\n", len(encoding.Tokens))

	numWords := len(encoding.Words)
	if numWords > 16 {
		numWords = 16
	}
	for _, w := range encoding.Words[:numWords] {
		fmt.Printf("word: %v\n", w)
	}
}
