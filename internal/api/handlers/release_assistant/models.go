package release_assistant

import (
	releaseAssistant "github.com/m04kA/SMC-AssistantBooking/internal/usecase/release_assistant"
)

// ReleaseAssistantResponse HTTP response model
type ReleaseAssistantResponse struct {
	AssistantID           string   `json:"assistantId"`
	Mode                  string   `json:"mode"`
	RemovedReservationIDs []string `json:"removedReservationIds"`
	SkippedReservationIDs []string `json:"skippedReservationIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *releaseAssistant.Response) *ReleaseAssistantResponse {
	out := &ReleaseAssistantResponse{
		AssistantID:           resp.AssistantID,
		Mode:                  string(resp.Mode),
		RemovedReservationIDs: resp.Removed,
		SkippedReservationIDs: resp.Skipped,
	}
	if out.RemovedReservationIDs == nil {
		out.RemovedReservationIDs = []string{}
	}
	if out.SkippedReservationIDs == nil {
		out.SkippedReservationIDs = []string{}
	}
	return out
}
