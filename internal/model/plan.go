package model

// Routine is one exercise within a workout day.
type Routine struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExerciseDay groups the routines of one scheduled day.
type ExerciseDay struct {
	Day      string    `json:"day"`
	Routines []Routine `json:"routines"`
}

// WorkoutPlan is the strict shape persisted for workouts. Instances are only
// produced by the plan normalizer, so Schedule is always non-empty and slices
// are never nil.
type WorkoutPlan struct {
	Schedule  []string      `json:"schedule"`
	Exercises []ExerciseDay `json:"exercises"`
}

// Meal is one meal of a diet plan. Foods is always non-empty.
type Meal struct {
	Name  string   `json:"name"`
	Foods []string `json:"foods"`
}

// DietPlan is the strict shape persisted for diets.
type DietPlan struct {
	DailyCalories int    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
}

// Plan is the persisted record, created exactly once per successful
// generation request and never mutated here.
type Plan struct {
	UserID      string      `json:"userId"`
	Name        string      `json:"name"`
	WorkoutPlan WorkoutPlan `json:"workoutPlan"`
	DietPlan    DietPlan    `json:"dietPlan"`
	IsActive    bool        `json:"isActive"`
}
