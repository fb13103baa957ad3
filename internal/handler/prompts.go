package handler

import (
	"fmt"

	"github.com/donald-madangure/nutrifit.ai/internal/model"
)

// planTemperature trades a little determinism for more varied exercise and
// meal selection.
const planTemperature = 0.5

const (
	coachPersona        = "You are a professional fitness coach. Return ONLY valid JSON. No conversational text."
	nutritionistPersona = "You are a professional nutritionist. Return ONLY valid JSON."
)

const workoutTemplate = `Create a %d-day workout plan for a %dyo %s focused on %s.
REQUIRED JSON FORMAT:
{
  "schedule": ["Monday", "Wednesday", "Friday"],
  "exercises": [
    { "day": "Monday", "routines": [{"name": "Squats", "sets": 3, "reps": 12}] }
  ]
}`

const dietTemplate = `Create a diet plan for goal: %s with restrictions: %s.
REQUIRED JSON FORMAT:
{
  "dailyCalories": 2400,
  "meals": [
    { "name": "Breakfast", "foods": ["Oatmeal", "Egg whites"] }
  ]
}`

func workoutPrompt(args model.ProfileArgs) string {
	return fmt.Sprintf(workoutTemplate, args.WorkoutDays, args.Age, args.FitnessLevel, args.FitnessGoal)
}

func dietPrompt(args model.ProfileArgs) string {
	return fmt.Sprintf(dietTemplate, args.FitnessGoal, args.DietaryRestrictions)
}
