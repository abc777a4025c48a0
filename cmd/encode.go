package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mirtools/rolltok/constants"
	"github.com/mirtools/rolltok/midi"
	"github.com/mirtools/rolltok/model"
	"github.com/mirtools/rolltok/roll"
	"github.com/mirtools/rolltok/token"
	"github.com/mirtools/rolltok/tokenizer"
	"github.com/mirtools/rolltok/util"
)

var (
	encodeStartTime    float64
	encodeClipDuration float64
	encodeFPS          int
	encodePitchesNum   int
	encodeMaxTokens    int
)

func init() {
	encodeCmd.Flags().Float64Var(&encodeStartTime, "start-time", 0, "clip offset within the recording in seconds")
	encodeCmd.Flags().Float64Var(&encodeClipDuration, "clip-duration", 10, "clip length in seconds")
	encodeCmd.Flags().IntVar(&encodeFPS, "fps", constants.DefaultFPS, "frames per second of the roll grid")
	encodeCmd.Flags().IntVar(&encodePitchesNum, "pitches", constants.DefaultPitchesNum, "number of pitch classes")
	encodeCmd.Flags().IntVar(&encodeMaxTokens, "max-tokens", constants.DefaultMaxTokens, "fixed token sequence length")
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode <midi-file>",
	Short: "Encodes a clip of a midi file",
	Long:  `Encodes a clip of a midi file into piano rolls and a token sequence, saved as a gob binary`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encode(args[0])
	},
}

func encode(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	notes, pedals := midi.Events(parsed)
	fmt.Printf("Read %v notes and %v pedal events from %v\n", len(notes), len(pedals), path)

	enc := roll.Encoder{FPS: encodeFPS, PitchesNum: encodePitchesNum}
	rolls, err := enc.Encode(roll.Input{
		Notes:        notes,
		Pedals:       pedals,
		StartTime:    encodeStartTime,
		ClipDuration: encodeClipDuration,
	})
	if err != nil {
		panic("Could not encode rolls: " + err.Error())
	}

	tokIn := token.Input{ClipNotes: rolls.ClipNotes, ClipDuration: encodeClipDuration}
	dict := tokenizer.NewDict(token.Words(tokIn))
	tokens := token.Encoder{Tokenizer: dict, MaxTokens: encodeMaxTokens}.Encode(tokIn)

	encoding := model.ClipEncoding{
		OnsetRoll:    rolls.OnsetRoll,
		OffsetRoll:   rolls.OffsetRoll,
		FrameRoll:    rolls.FrameRoll,
		VelocityRoll: rolls.VelocityRoll,
		ClipNotes:    rolls.ClipNotes,
		Words:        tokens.Words,
		Tokens:       tokens.Tokens,
		Mask:         tokens.Mask,
		TokensNum:    tokens.TokensNum,
	}

	os.MkdirAll(constants.GetOutDir(), 0777)
	filename := filepath.Join(constants.GetOutDir(), uuid.New().String()+".dat")
	util.CreateBinary(filename, encoding)
	fmt.Printf("Encoded %v clip notes into %v tokens\n", len(rolls.ClipNotes), tokens.TokensNum)
}
