package dto

type TranscribeResponse struct {
	Text string `json:"text"`
}

type SynthesizeRequest struct {
	Text string `json:"text" validate:"required"`
}
