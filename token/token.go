// Package token serializes clip notes into a flat token sequence for
// sequence-model supervision.
package token

import (
	"fmt"

	"github.com/mirtools/rolltok/constants"
	"github.com/mirtools/rolltok/model"
	"github.com/mirtools/rolltok/util"
)

// Tokenizer maps event words to integer ids. Handling of unknown words is the
// implementation's concern.
type Tokenizer interface {
	Stoi(word string) int
}

type Encoder struct {
	Tokenizer Tokenizer
	MaxTokens int
}

// Input carries the clip-relative notes produced by the roll encoder.
type Input struct {
	ClipNotes    []model.Note
	ClipDuration float64
}

// Output holds the word stream plus its tokenized, fixed-length form.
// TokensNum is the pre-padding length; when it exceeds MaxTokens the trailing
// events were silently dropped by truncation.
type Output struct {
	Words     []string
	Tokens    []int
	Mask      []int
	TokensNum int
}

// Words serializes notes into the word stream without tokenizing, so callers
// can build a vocabulary before encoding. A note contributes a note_on group
// only when its onset lies inside [0, clipDuration] and a note_off group only
// when its offset does.
func Words(in Input) []string {
	words := []string{constants.SeqMarker}

	for _, note := range in.ClipNotes {
		if 0 <= note.Start && note.Start <= in.ClipDuration {
			words = append(words,
				"name=note_on",
				fmt.Sprintf("time=%v", note.Start),
				fmt.Sprintf("pitch=%v", note.Pitch),
				fmt.Sprintf("velocity=%v", note.Velocity),
			)
		}
		if 0 <= note.End && note.End <= in.ClipDuration {
			words = append(words,
				"name=note_off",
				fmt.Sprintf("time=%v", note.End),
				fmt.Sprintf("pitch=%v", note.Pitch),
			)
		}
	}

	// The closing marker reuses the opening symbol.
	words = append(words, constants.SeqMarker)
	return words
}

func (e Encoder) Encode(in Input) Output {
	words := Words(in)

	tokens := make([]int, len(words))
	for i, w := range words {
		tokens[i] = e.Tokenizer.Stoi(w)
	}
	tokensNum := len(tokens)

	mask := make([]int, tokensNum)
	for i := range mask {
		mask[i] = 1
	}

	return Output{
		Words:     words,
		Tokens:    util.FixLength(tokens, e.MaxTokens),
		Mask:      util.FixLength(mask, e.MaxTokens),
		TokensNum: tokensNum,
	}
}
