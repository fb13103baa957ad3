package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

func TestReduce_CoalescesPartialRun(t *testing.T) {
	var log []model.TranscriptMessage
	log = Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Hi", TranscriptType: TranscriptPartial})
	log = Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Hi there", TranscriptType: TranscriptPartial})
	log = Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Hi there", TranscriptType: TranscriptFinal})

	assert.Equal(t, []model.TranscriptMessage{
		{Role: model.RoleUser, Content: "Hi there", IsPartial: false},
	}, log)
}

func TestReduce_DropsDuplicateFinal(t *testing.T) {
	log := []model.TranscriptMessage{
		{Role: model.RoleUser, Content: "Hello coach", IsPartial: false},
	}
	out := Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Hello coach", TranscriptType: TranscriptFinal})

	assert.Equal(t, log, out)
}

func TestReduce_AppendsAcrossRoles(t *testing.T) {
	var log []model.TranscriptMessage
	log = Reduce(log, TranscriptEvent{Role: model.RoleAssistant, Transcript: "How can I help?", TranscriptType: TranscriptFinal})
	log = Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Build me a plan", TranscriptType: TranscriptFinal})

	assert.Equal(t, []model.TranscriptMessage{
		{Role: model.RoleAssistant, Content: "How can I help?", IsPartial: false},
		{Role: model.RoleUser, Content: "Build me a plan", IsPartial: false},
	}, log)
}

func TestReduce_PartialOfOtherRoleStartsNewLine(t *testing.T) {
	log := []model.TranscriptMessage{
		{Role: model.RoleAssistant, Content: "Tell me your goal", IsPartial: true},
	}
	out := Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "I want", TranscriptType: TranscriptPartial})

	assert.Len(t, out, 2)
	assert.Equal(t, model.TranscriptMessage{Role: model.RoleUser, Content: "I want", IsPartial: true}, out[1])
}

func TestReduce_FinalThenPartialSameContentAppends(t *testing.T) {
	// Only finals are deduplicated; a new partial with identical text is a
	// fresh utterance.
	log := []model.TranscriptMessage{
		{Role: model.RoleUser, Content: "Yes", IsPartial: false},
	}
	out := Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Yes", TranscriptType: TranscriptPartial})

	assert.Len(t, out, 2)
	assert.True(t, out[1].IsPartial)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	log := []model.TranscriptMessage{
		{Role: model.RoleUser, Content: "Hi", IsPartial: true},
	}
	_ = Reduce(log, TranscriptEvent{Role: model.RoleUser, Transcript: "Hi there", TranscriptType: TranscriptPartial})

	assert.Equal(t, "Hi", log[0].Content)
}
