package model

// Speaker roles in a call transcript.
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// TranscriptMessage is one visible line of the conversation log. IsPartial
// marks a provisional speech-to-text hypothesis that may still be revised.
type TranscriptMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	IsPartial bool   `json:"isPartial"`
}
