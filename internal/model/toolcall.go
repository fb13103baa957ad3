package model

import (
	"encoding/json"
	"strconv"
)

// ToolCallEnvelope is the voice platform's message wrapper. The envelope is
// optional: callers may also POST a flat argument object.
type ToolCallEnvelope struct {
	Message *ToolCallMessage `json:"message"`
}

// ToolCallMessage carries the tool calls of one platform message.
type ToolCallMessage struct {
	ToolCalls []ToolCall `json:"toolCalls"`
}

// ToolCall is a single function invocation request.
type ToolCall struct {
	ID       string           `json:"id"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction holds the function name and its arguments. Arguments may
// arrive as a native JSON object or double-encoded as a JSON string.
type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Defaults applied when the voice agent omits or garbles an argument.
const (
	DefaultFitnessGoal         = "general fitness"
	DefaultWorkoutDays         = 3
	DefaultAge                 = 25
	DefaultFitnessLevel        = "beginner"
	DefaultDietaryRestrictions = "none"
)

// ProfileArgs is the resolved argument bundle of a plan-generation request.
// Every recognized option and its default lives in ResolveProfileArgs so the
// defaults cannot drift apart across handlers and prompts.
type ProfileArgs struct {
	UserID              string `json:"user_id" validate:"required"`
	FitnessGoal         string `json:"fitness_goal"`
	WorkoutDays         int    `json:"workout_days"`
	Age                 int    `json:"age"`
	FitnessLevel        string `json:"fitness_level"`
	DietaryRestrictions string `json:"dietary_restrictions"`
}

// ResolveProfileArgs converts a loosely-typed argument bag into ProfileArgs,
// substituting defaults for anything missing or of the wrong type. UserID has
// no default; its absence is rejected by validation before any model call.
func ResolveProfileArgs(raw map[string]any) ProfileArgs {
	return ProfileArgs{
		UserID:              argString(raw["user_id"], ""),
		FitnessGoal:         argString(raw["fitness_goal"], DefaultFitnessGoal),
		WorkoutDays:         argInt(raw["workout_days"], DefaultWorkoutDays),
		Age:                 argInt(raw["age"], DefaultAge),
		FitnessLevel:        argString(raw["fitness_level"], DefaultFitnessLevel),
		DietaryRestrictions: argString(raw["dietary_restrictions"], DefaultDietaryRestrictions),
	}
}

func argString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// argInt accepts JSON numbers and numeric strings; the agent is not
// consistent about which it sends. Zero falls back like absence does.
func argInt(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n != 0 {
			return int(n)
		}
	case string:
		if parsed, err := strconv.Atoi(n); err == nil && parsed != 0 {
			return parsed
		}
	}
	return fallback
}
