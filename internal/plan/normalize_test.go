package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	assert.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestNormalizeWorkout_Empty(t *testing.T) {
	out := NormalizeWorkout(map[string]any{})

	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, out.Schedule)
	assert.Equal(t, []model.ExerciseDay{}, out.Exercises)
}

func TestNormalizeWorkout_WellFormed(t *testing.T) {
	out := NormalizeWorkout(decode(t, `{
		"schedule": ["Tuesday", "Thursday"],
		"exercises": [
			{"day": "Tuesday", "routines": [
				{"name": "Squats", "sets": 4, "reps": 12, "duration": "10 min", "description": "Go deep"}
			]}
		]
	}`))

	assert.Equal(t, []string{"Tuesday", "Thursday"}, out.Schedule)
	assert.Len(t, out.Exercises, 1)
	assert.Equal(t, "Tuesday", out.Exercises[0].Day)
	assert.Equal(t, model.Routine{
		Name:        "Squats",
		Sets:        4,
		Reps:        12,
		Duration:    "10 min",
		Description: "Go deep",
	}, out.Exercises[0].Routines[0])
}

func TestNormalizeWorkout_CoercesBadFields(t *testing.T) {
	out := NormalizeWorkout(decode(t, `{
		"schedule": [],
		"exercises": [
			{"routines": [
				{"sets": "not a number", "reps": 0},
				{"name": "Lunges", "sets": "5", "reps": 8.0}
			]},
			"not an object"
		]
	}`))

	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, out.Schedule)
	assert.Len(t, out.Exercises, 1)
	assert.Equal(t, "Workout Day", out.Exercises[0].Day)

	r := out.Exercises[0].Routines
	assert.Equal(t, "Strength Exercise", r[0].Name)
	assert.Equal(t, 3, r[0].Sets, "non-numeric sets falls back")
	assert.Equal(t, 10, r[0].Reps, "zero reps falls back, never to zero")
	assert.Empty(t, r[0].Duration)

	assert.Equal(t, 5, r[1].Sets, "numeric string is accepted")
	assert.Equal(t, 8, r[1].Reps)
}

func TestNormalizeDiet_Empty(t *testing.T) {
	out := NormalizeDiet(map[string]any{})

	assert.Equal(t, 2200, out.DailyCalories)
	assert.Equal(t, []model.Meal{}, out.Meals)
}

func TestNormalizeDiet_EmptyFoodsFallBack(t *testing.T) {
	out := NormalizeDiet(decode(t, `{"meals": [{"name": "Lunch", "foods": []}]}`))

	assert.Equal(t, 2200, out.DailyCalories)
	assert.Equal(t, []model.Meal{
		{Name: "Lunch", Foods: []string{"Healthy Protein", "Vegetables", "Complex Carbs"}},
	}, out.Meals)
}

func TestNormalizeDiet_WellFormed(t *testing.T) {
	out := NormalizeDiet(decode(t, `{
		"dailyCalories": 1900,
		"meals": [
			{"name": "Breakfast", "foods": ["Oatmeal", "Egg whites"]},
			{"foods": ["Chicken", 42]}
		]
	}`))

	assert.Equal(t, 1900, out.DailyCalories)
	assert.Equal(t, []string{"Oatmeal", "Egg whites"}, out.Meals[0].Foods)
	assert.Equal(t, "Meal", out.Meals[1].Name)
	assert.Equal(t, []string{"Chicken", "42"}, out.Meals[1].Foods)
}

func TestNormalize_TotalOnGarbage(t *testing.T) {
	inputs := []map[string]any{
		nil,
		{"schedule": "not an array", "exercises": "nope", "meals": 7, "dailyCalories": []any{}},
		{"exercises": []any{nil, 1.5, map[string]any{"routines": "x"}}},
	}

	for _, in := range inputs {
		workout := NormalizeWorkout(in)
		diet := NormalizeDiet(in)

		assert.NotEmpty(t, workout.Schedule)
		assert.NotNil(t, workout.Exercises)
		assert.NotZero(t, diet.DailyCalories)
		assert.NotNil(t, diet.Meals)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := decode(t, `{
		"schedule": ["Monday"],
		"exercises": [{"day": "Monday", "routines": [{"name": "Rows", "sets": 0, "reps": "12"}]}],
		"dailyCalories": "bad",
		"meals": [{"foods": []}]
	}`)

	workoutOnce := NormalizeWorkout(raw)
	dietOnce := NormalizeDiet(raw)

	// Round-trip through JSON to feed the normalized output back in.
	workoutTwice := NormalizeWorkout(roundTrip(t, workoutOnce))
	dietTwice := NormalizeDiet(roundTrip(t, dietOnce))

	assert.Equal(t, workoutOnce, workoutTwice)
	assert.Equal(t, dietOnce, dietTwice)
}

func roundTrip(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return decode(t, string(data))
}
