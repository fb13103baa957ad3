package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donald-madangure/nutrifit.ai/internal/llm"
	"github.com/donald-madangure/nutrifit.ai/internal/model"
	"github.com/donald-madangure/nutrifit.ai/internal/plan"
)

// vapiSecretHeader carries the shared secret on tool-call requests.
const vapiSecretHeader = "x-vapi-secret"

// ToolResult is one entry of the tool-result envelope returned to the voice
// platform.
type ToolResult struct {
	ToolCallID string `json:"toolCallId,omitempty"`
	Result     string `json:"result"`
}

// ToolResultResponse is the envelope shape the platform expects.
type ToolResultResponse struct {
	Results []ToolResult `json:"results"`
}

// GenerateProgram fulfills the voice agent's plan-generation tool call:
// authorize, extract arguments, run the workout and diet completions,
// normalize, persist once, respond with a tool result.
func (h *Handler) GenerateProgram(w http.ResponseWriter, r *http.Request) {
	if h.vapiSecret != "" && r.Header.Get(vapiSecretHeader) != h.vapiSecret {
		h.log.Warn("tool call with bad shared secret")
		h.writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unable to read request body"})
		return
	}

	rawArgs, toolCallID := extractArgs(body)
	args := model.ResolveProfileArgs(rawArgs)
	if err := h.validate.Struct(args); err != nil {
		// Reject before any model call is billed.
		h.log.Error("tool call missing user_id")
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "missing user_id"})
		return
	}

	h.log.Info("generating plan",
		zap.String("user_id", args.UserID),
		zap.String("goal", args.FitnessGoal),
		zap.Int("days", args.WorkoutDays))

	// The two completions have no data dependency; persistence waits for both.
	var workoutContent, dietContent string
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		workoutContent, err = h.llm.Complete(ctx, llm.Request{
			System:      coachPersona,
			Prompt:      workoutPrompt(args),
			Temperature: planTemperature,
			JSONOnly:    true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		dietContent, err = h.llm.Complete(ctx, llm.Request{
			System:      nutritionistPersona,
			Prompt:      dietPrompt(args),
			Temperature: planTemperature,
			JSONOnly:    true,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		h.log.Error("plan generation failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	record := model.Plan{
		UserID:      args.UserID,
		Name:        args.FitnessGoal + " Plan",
		WorkoutPlan: plan.NormalizeWorkout(plan.DecodeLLMJSON(workoutContent)),
		DietPlan:    plan.NormalizeDiet(plan.DecodeLLMJSON(dietContent)),
		IsActive:    true,
	}

	planID, err := h.store.CreatePlan(r.Context(), record)
	if err != nil {
		h.log.Error("plan persistence failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.log.Info("plan saved", zap.String("user_id", args.UserID), zap.String("plan_id", planID))
	h.writeJSON(w, http.StatusOK, ToolResultResponse{
		Results: []ToolResult{{
			ToolCallID: toolCallID,
			Result:     fmt.Sprintf("Successfully generated and saved plan %s.", planID),
		}},
	})
}

// extractArgs pulls the argument bag out of a tool-call envelope, falling
// back to the raw body when no envelope is present. It also returns the
// originating tool call id, when there is one, for the response echo.
func extractArgs(body []byte) (map[string]any, string) {
	var env model.ToolCallEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != nil && len(env.Message.ToolCalls) > 0 {
		tc := env.Message.ToolCalls[0]
		return decodeArguments(tc.Function.Arguments), tc.ID
	}

	var flat map[string]any
	if err := json.Unmarshal(body, &flat); err != nil || flat == nil {
		return map[string]any{}, ""
	}
	return flat, ""
}

// decodeArguments handles both native-object arguments and arguments that
// arrive double-encoded as a JSON string.
func decodeArguments(raw json.RawMessage) map[string]any {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}

	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}
