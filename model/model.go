package model

// Note is a single note event. Start and End are seconds, absolute within
// the source recording or clip-relative after roll encoding.
type Note struct {
	Pitch    uint8   `json:"pitch"`
	Velocity uint8   `json:"velocity"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// PedalEvent is one sustain pedal press interval in seconds.
type PedalEvent struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Roll is a (frames, pitches) matrix.
type Roll = [][]float32

func NewRoll(frames, pitches int) Roll {
	r := make(Roll, frames)
	for i := range r {
		r[i] = make([]float32, pitches)
	}
	return r
}

// ClipEncoding is everything produced for one clip: the four rolls, the
// clipped note list, and the token sequence. TokensNum is the pre-padding
// token count, which can exceed len(Tokens) after truncation.
type ClipEncoding struct {
	OnsetRoll    Roll
	OffsetRoll   Roll
	FrameRoll    Roll
	VelocityRoll Roll
	ClipNotes    []Note
	Words        []string
	Tokens       []int
	Mask         []int
	TokensNum    int
}

type RecordingMetadata struct {
	Year    uint   `json:"year,omitempty"`
	Artist  string `json:"artist,omitempty"`
	Release string `json:"release,omitempty"`
	Title   string `json:"title,omitempty"`
}
