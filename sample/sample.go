// Package sample renders note lists back into small single-track SMFs, for
// clip export and test fixtures.
package sample

import (
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/mirtools/rolltok/constants"
	"github.com/mirtools/rolltok/model"
)

const (
	ticksPerQuarter = 960
	tempoBPM        = 120
)

func secondsToTicks(sec float64) uint32 {
	return uint32(math.Round(sec * ticksPerQuarter * tempoBPM / 60.0))
}

type timedMessage struct {
	ticks uint32
	isEnd bool
	msg   midi.Message
}

// FromNotes builds a format-0 SMF holding the given notes and pedal
// intervals at a fixed tempo, so tick times map back to the same seconds.
func FromNotes(notes []model.Note, pedals []model.PedalEvent) *smf.SMF {
	var msgs []timedMessage
	for _, n := range notes {
		msgs = append(msgs, timedMessage{
			ticks: secondsToTicks(n.Start),
			msg:   midi.NoteOn(0, n.Pitch, n.Velocity),
		})
		msgs = append(msgs, timedMessage{
			ticks: secondsToTicks(n.End),
			isEnd: true,
			msg:   midi.NoteOff(0, n.Pitch),
		})
	}
	for _, p := range pedals {
		msgs = append(msgs, timedMessage{
			ticks: secondsToTicks(p.Start),
			msg:   midi.ControlChange(0, constants.SustainControl, 127),
		})
		msgs = append(msgs, timedMessage{
			ticks: secondsToTicks(p.End),
			isEnd: true,
			msg:   midi.ControlChange(0, constants.SustainControl, 0),
		})
	}

	// releases before presses at equal ticks, matching how the extractor
	// pairs them back up
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].ticks != msgs[j].ticks {
			return msgs[i].ticks < msgs[j].ticks
		}
		return msgs[i].isEnd && !msgs[j].isEnd
	})

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempoBPM))
	var prevTicks uint32
	for _, m := range msgs {
		track.Add(m.ticks-prevTicks, m.msg)
		prevTicks = m.ticks
	}
	track.Close(0)

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	res.Add(track)
	return res
}
