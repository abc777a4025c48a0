package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("ROLLTOK_OUT")
	if path != "" {
		return path
	}
	return "./out"
}

// Defaults matching common piano transcription setups.
const (
	DefaultFPS        = 100
	DefaultPitchesNum = 128
	DefaultMaxTokens  = 1024
)

// VelocityScale normalizes MIDI velocities into [0, 1).
const VelocityScale = 128

// SeqMarker opens and closes every word sequence.
const SeqMarker = "<sos>"

// SustainControl is the MIDI CC number for the sustain pedal. Values at or
// above SustainThreshold count as pressed.
const (
	SustainControl   = 64
	SustainThreshold = 64
)
