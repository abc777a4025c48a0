package model

type EncodeRequestBody struct {
	Notes        []Note       `json:"notes"`
	Pedals       []PedalEvent `json:"pedals,omitempty"`
	StartTime    float64      `json:"start_time"`
	ClipDuration float64      `json:"clip_duration"`
	Filename     string       `json:"filename,omitempty"`
}

type EncodeResponse struct {
	OnsetRoll    Roll               `json:"onset_roll"`
	OffsetRoll   Roll               `json:"offset_roll"`
	FrameRoll    Roll               `json:"frame_roll"`
	VelocityRoll Roll               `json:"velocity_roll"`
	ClipNotes    []Note             `json:"clip_note"`
	Metadata     *RecordingMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
