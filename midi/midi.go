// Package midi reads standard MIDI files and flattens them into absolute-time
// note and sustain pedal events for the roll and token encoders.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/mirtools/rolltok/constants"
	"github.com/mirtools/rolltok/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.New(fmt.Sprintf("Error reading midi file... %s", err.Error()))
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.New(fmt.Sprintf("Error parsing midi file... %s", err.Error()))
	}

	return res, nil
}

type rawEvent struct {
	seconds  float64
	isEnd    bool
	key      uint8
	velocity uint8
}

type heldNote struct {
	start    float64
	velocity uint8
}

// Events flattens all tracks into note and sustain pedal intervals with
// absolute-seconds times. Note-off events sort before note-on events at the
// same instant so that back-to-back repetitions of a pitch pair up cleanly.
// A note or pedal still held at the end of the file is closed at the time of
// the last event.
func Events(s *smf.SMF) ([]model.Note, []model.PedalEvent) {
	var noteEvents []rawEvent
	var pedalEvents []rawEvent
	var lastTime float64

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			seconds := float64(s.TimeAt(absTicks)) / 1e6
			if seconds > lastTime {
				lastTime = seconds
			}
			var channel uint8
			var key uint8
			var velocity uint8
			var controller uint8
			var value uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// velocity 0 is the running-status note-off convention
				if velocity == 0 {
					noteEvents = append(noteEvents, rawEvent{seconds: seconds, isEnd: true, key: key})
				} else {
					noteEvents = append(noteEvents, rawEvent{seconds: seconds, key: key, velocity: velocity})
				}
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				noteEvents = append(noteEvents, rawEvent{seconds: seconds, isEnd: true, key: key})
			case event.Message.GetControlChange(&channel, &controller, &value):
				if controller != constants.SustainControl {
					continue
				}
				pressed := value >= constants.SustainThreshold
				pedalEvents = append(pedalEvents, rawEvent{seconds: seconds, isEnd: !pressed})
			}
		}
	}

	sortRawEvents(noteEvents)
	sortRawEvents(pedalEvents)

	return pairNotes(noteEvents, lastTime), pairPedals(pedalEvents, lastTime)
}

func sortRawEvents(events []rawEvent) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].seconds != events[j].seconds {
			return events[i].seconds < events[j].seconds
		}
		return events[i].isEnd && !events[j].isEnd
	})
}

func pairNotes(events []rawEvent, lastTime float64) []model.Note {
	var notes []model.Note
	held := make(map[uint8]heldNote)

	for _, evt := range events {
		if evt.isEnd {
			h, ok := held[evt.key]
			if !ok {
				// note-off without a matching note-on
				continue
			}
			notes = append(notes, model.Note{
				Pitch:    evt.key,
				Velocity: h.velocity,
				Start:    h.start,
				End:      evt.seconds,
			})
			delete(held, evt.key)
			continue
		}

		// A repeated note-on implicitly ends the previous one.
		if h, ok := held[evt.key]; ok {
			notes = append(notes, model.Note{
				Pitch:    evt.key,
				Velocity: h.velocity,
				Start:    h.start,
				End:      evt.seconds,
			})
		}
		held[evt.key] = heldNote{start: evt.seconds, velocity: evt.velocity}
	}

	for key, h := range held {
		notes = append(notes, model.Note{
			Pitch:    key,
			Velocity: h.velocity,
			Start:    h.start,
			End:      lastTime,
		})
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Start != notes[j].Start {
			return notes[i].Start < notes[j].Start
		}
		return notes[i].Pitch < notes[j].Pitch
	})
	return notes
}

func pairPedals(events []rawEvent, lastTime float64) []model.PedalEvent {
	var pedals []model.PedalEvent
	var pressedAt float64
	pressed := false

	for _, evt := range events {
		if !evt.isEnd && !pressed {
			pressed = true
			pressedAt = evt.seconds
		} else if evt.isEnd && pressed {
			pressed = false
			pedals = append(pedals, model.PedalEvent{Start: pressedAt, End: evt.seconds})
		}
	}
	if pressed {
		pedals = append(pedals, model.PedalEvent{Start: pressedAt, End: lastTime})
	}
	return pedals
}
