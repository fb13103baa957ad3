// Package session drives a live voice-coaching call: a lifecycle state
// machine over the platform's event stream, and a reconciler that folds
// streaming transcript events into a stable conversation log. The controller
// is a reducer over a closed event set, independent of any event-emitter API.
package session

// Status is the call lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusConnecting Status = "connecting"
	StatusActive     Status = "active"
	StatusEnded      Status = "ended"
)

// EventType identifies a voice-platform event.
type EventType string

const (
	EventCallStart   EventType = "call-start"
	EventCallEnd     EventType = "call-end"
	EventSpeechStart EventType = "speech-start"
	EventSpeechEnd   EventType = "speech-end"
	EventVolumeLevel EventType = "volume-level"
	EventTranscript  EventType = "transcript"
	EventError       EventType = "error"
)

// Transcript precision markers. A partial is a provisional hypothesis; a
// final is the committed utterance.
const (
	TranscriptPartial = "partial"
	TranscriptFinal   = "final"
)

// TranscriptEvent is one speech-to-text update from the platform.
type TranscriptEvent struct {
	Role           string
	Transcript     string
	TranscriptType string
}

// Event is one delivery from the platform's event bus.
type Event struct {
	Type       EventType
	Volume     float64
	Transcript *TranscriptEvent
	Err        error
}
