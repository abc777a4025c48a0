// Package roll converts the note events of a full recording into piano rolls
// of a short clip: a frame roll, onset roll, offset roll, and velocity roll.
package roll

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/mirtools/rolltok/constants"
	"github.com/mirtools/rolltok/model"
)

// Encoder quantizes clip-relative note times onto a discrete frame grid.
//
// SoftTarget is accepted for config compatibility but has no effect: the
// fractional-delay sub-frame rolls are not implemented.
type Encoder struct {
	FPS        int
	PitchesNum int
	SoftTarget bool
}

func NewEncoder() Encoder {
	return Encoder{
		FPS:        constants.DefaultFPS,
		PitchesNum: constants.DefaultPitchesNum,
	}
}

// Input is one clip window over a recording's event stream. StartTime is the
// clip offset within the recording in seconds. Pedals are accepted but not
// encoded into any roll channel.
type Input struct {
	Notes        []model.Note
	Pedals       []model.PedalEvent
	StartTime    float64
	ClipDuration float64
}

// Output holds four (clipFrames, pitchesNum) rolls plus the notes that
// intersect the clip, clip-relative and sorted by (start, pitch, end,
// velocity).
type Output struct {
	OnsetRoll    model.Roll
	OffsetRoll   model.Roll
	FrameRoll    model.Roll
	VelocityRoll model.Roll
	ClipNotes    []model.Note
}

// span says how a note sits relative to the clip window [0, dur]. Both window
// bounds are closed, so a note ending exactly on the boundary lands in this
// clip and in the next one when clips are sampled back to back. That
// one-frame overlap is intentional.
type span int

const (
	spanTail   span = iota // sounding at clip start, released inside
	spanWhole              // sounding across the entire clip
	spanInside             // onset and offset both inside
	spanHead               // starts inside, still sounding at clip end
	spanUnknown
)

func classify(onset, offset, dur float64) span {
	onsetIn := 0 <= onset && onset <= dur
	offsetIn := 0 <= offset && offset <= dur
	switch {
	case onset < 0 && offsetIn:
		return spanTail
	case onset < 0 && offset > dur:
		return spanWhole
	case onsetIn && offsetIn:
		return spanInside
	case onsetIn && offset > dur:
		return spanHead
	}
	return spanUnknown
}

// frameIndex rounds to the nearest frame. Halfway values round away from
// zero, so a tie lands on the later frame.
func (e Encoder) frameIndex(t float64) int {
	return int(math.Round(t * float64(e.FPS)))
}

// Encode builds the four rolls for one clip. Notes that end before the clip
// or start after it are skipped entirely. Same-pitch overlaps are not
// deduplicated; later notes win on shared frames.
func (e Encoder) Encode(in Input) (Output, error) {
	if in.ClipDuration < 0 {
		return Output{}, errors.New(fmt.Sprintf("clip duration %v should not be negative", in.ClipDuration))
	}

	clipFrames := int(math.Round(float64(e.FPS)*in.ClipDuration)) + 1

	frameRoll := model.NewRoll(clipFrames, e.PitchesNum)
	onsetRoll := model.NewRoll(clipFrames, e.PitchesNum)
	offsetRoll := model.NewRoll(clipFrames, e.PitchesNum)
	velocityRoll := model.NewRoll(clipFrames, e.PitchesNum)

	var clipNotes []model.Note

	for _, note := range in.Notes {
		onsetTime := note.Start - in.StartTime
		offsetTime := note.End - in.StartTime
		pitch := int(note.Pitch)

		if pitch >= e.PitchesNum {
			return Output{}, errors.New(fmt.Sprintf("pitch %v is out of range for %v pitch classes", pitch, e.PitchesNum))
		}

		// Ended before the clip or starts after it.
		if offsetTime < 0 {
			continue
		}
		if onsetTime > in.ClipDuration {
			continue
		}

		// A zero-length note still occupies one frame.
		if offsetTime == onsetTime {
			offsetTime = onsetTime + 1/float64(e.FPS)
		}

		clipNotes = append(clipNotes, model.Note{
			Pitch:    note.Pitch,
			Velocity: note.Velocity,
			Start:    onsetTime,
			End:      offsetTime,
		})

		if offsetTime < onsetTime {
			return Output{}, errors.New(fmt.Sprintf("offset %v should not be smaller than onset %v (pitch %v)", offsetTime, onsetTime, pitch))
		}

		switch classify(onsetTime, offsetTime, in.ClipDuration) {
		case spanTail:
			// The true onset is outside the window, so only the offset and
			// frame channels are written.
			offsetIdx := e.frameIndex(offsetTime)
			offsetRoll[offsetIdx][pitch] = 1
			for t := 0; t <= offsetIdx; t++ {
				frameRoll[t][pitch] = 1
			}

		case spanWhole:
			for t := 0; t < clipFrames; t++ {
				frameRoll[t][pitch] = 1
			}

		case spanInside:
			onsetIdx := e.frameIndex(onsetTime)
			offsetIdx := e.frameIndex(offsetTime)
			onsetRoll[onsetIdx][pitch] = 1
			velocityRoll[onsetIdx][pitch] = float32(note.Velocity) / constants.VelocityScale
			offsetRoll[offsetIdx][pitch] = 1
			for t := onsetIdx; t <= offsetIdx; t++ {
				frameRoll[t][pitch] = 1
			}

		case spanHead:
			onsetIdx := e.frameIndex(onsetTime)
			onsetRoll[onsetIdx][pitch] = 1
			velocityRoll[onsetIdx][pitch] = float32(note.Velocity) / constants.VelocityScale
			for t := onsetIdx; t < clipFrames; t++ {
				frameRoll[t][pitch] = 1
			}

		default:
			// Unreachable given the skip rules above; hitting it means the
			// clip boundaries themselves are malformed.
			return Output{}, errors.New(fmt.Sprintf("cannot classify note on pitch %v with onset %v and offset %v", pitch, onsetTime, offsetTime))
		}
	}

	sort.Slice(clipNotes, func(i, j int) bool {
		a, b := clipNotes[i], clipNotes[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Pitch != b.Pitch {
			return a.Pitch < b.Pitch
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Velocity < b.Velocity
	})

	return Output{
		OnsetRoll:    onsetRoll,
		OffsetRoll:   offsetRoll,
		FrameRoll:    frameRoll,
		VelocityRoll: velocityRoll,
		ClipNotes:    clipNotes,
	}, nil
}
