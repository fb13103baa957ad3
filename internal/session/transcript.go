package session

import "github.com/donald-madangure/nutrifit.ai/internal/model"

// Reduce folds one transcript event into the conversation log, preserving
// arrival order. Same-speaker partial runs coalesce into one visible line,
// and a final that exactly re-sends the previous line is dropped so the
// platform's duplicate-final artifact never shows twice.
func Reduce(log []model.TranscriptMessage, ev TranscriptEvent) []model.TranscriptMessage {
	isPartial := ev.TranscriptType == TranscriptPartial

	if len(log) > 0 {
		last := log[len(log)-1]
		if last.Role == ev.Role && last.IsPartial {
			out := make([]model.TranscriptMessage, len(log))
			copy(out, log)
			out[len(out)-1] = model.TranscriptMessage{
				Role:      ev.Role,
				Content:   ev.Transcript,
				IsPartial: isPartial,
			}
			return out
		}
		if last.Content == ev.Transcript && !isPartial {
			return log
		}
	}

	out := make([]model.TranscriptMessage, len(log), len(log)+1)
	copy(out, log)
	return append(out, model.TranscriptMessage{
		Role:      ev.Role,
		Content:   ev.Transcript,
		IsPartial: isPartial,
	})
}
