// Package plan converts untrusted model output into always-valid plan
// records. The normalizers are total: every input produces a value that
// satisfies the plan shape invariants, and normalizing twice changes nothing.
package plan

import (
	"strconv"

	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

// Fallbacks substituted for missing or malformed fields.
var (
	fallbackSchedule = []string{"Monday", "Wednesday", "Friday"}
	fallbackFoods    = []string{"Healthy Protein", "Vegetables", "Complex Carbs"}
)

const (
	defaultDay      = "Workout Day"
	defaultExercise = "Strength Exercise"
	defaultSets     = 3
	defaultReps     = 10
	defaultCalories = 2200
	defaultMealName = "Meal"
)

// NormalizeWorkout shapes arbitrary decoded JSON into a WorkoutPlan.
// Model output carries no type guarantee, so every field is coerced:
// strings default when absent, numbers are numify-or-default (zero and
// non-numeric values both fall back, never to zero).
func NormalizeWorkout(raw map[string]any) model.WorkoutPlan {
	out := model.WorkoutPlan{
		Schedule:  stringSlice(raw["schedule"]),
		Exercises: []model.ExerciseDay{},
	}
	if len(out.Schedule) == 0 {
		out.Schedule = fallbackSchedule
	}

	for _, e := range anySlice(raw["exercises"]) {
		ex, ok := e.(map[string]any)
		if !ok {
			continue
		}
		day := model.ExerciseDay{
			Day:      stringOr(ex["day"], defaultDay),
			Routines: []model.Routine{},
		}
		for _, r := range anySlice(ex["routines"]) {
			routine, ok := r.(map[string]any)
			if !ok {
				continue
			}
			day.Routines = append(day.Routines, model.Routine{
				Name:        stringOr(routine["name"], defaultExercise),
				Sets:        intOr(routine["sets"], defaultSets),
				Reps:        intOr(routine["reps"], defaultReps),
				Duration:    stringOr(routine["duration"], ""),
				Description: stringOr(routine["description"], ""),
			})
		}
		out.Exercises = append(out.Exercises, day)
	}
	return out
}

// NormalizeDiet shapes arbitrary decoded JSON into a DietPlan. Empty or
// absent food lists fall back to a fixed three-item list so meals are never
// persisted empty.
func NormalizeDiet(raw map[string]any) model.DietPlan {
	out := model.DietPlan{
		DailyCalories: intOr(raw["dailyCalories"], defaultCalories),
		Meals:         []model.Meal{},
	}

	for _, m := range anySlice(raw["meals"]) {
		meal, ok := m.(map[string]any)
		if !ok {
			continue
		}
		foods := stringSlice(meal["foods"])
		if len(foods) == 0 {
			foods = fallbackFoods
		}
		out.Meals = append(out.Meals, model.Meal{
			Name:  stringOr(meal["name"], defaultMealName),
			Foods: foods,
		})
	}
	return out
}

func anySlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// stringSlice keeps string entries, renders numeric ones, and drops the rest.
func stringSlice(v any) []string {
	items := anySlice(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringOr(item, ""); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringOr(v any, fallback string) string {
	switch s := v.(type) {
	case string:
		if s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fallback
}

// intOr accepts JSON numbers and numeric strings. Anything else, including
// zero, yields the fallback.
func intOr(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n != 0 {
			return int(n)
		}
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil && parsed != 0 {
			return int(parsed)
		}
	}
	return fallback
}
