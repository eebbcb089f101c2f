// Package app holds the application use cases: reading sensor
// packages and turning them into workout summaries.
package app

import (
	"ftracker/internal/domain"
)

// constructors maps each workout-type code to its record constructor.
// Built once; never mutated.
var constructors = map[string]func([]float64) (domain.Workout, error){
	domain.CodeSwimming:      domain.NewSwimming,
	domain.CodeRunning:       domain.NewRunning,
	domain.CodeSportsWalking: domain.NewSportsWalking,
}

// ReadPackage constructs the workout record matching the given
// workout-type code from the raw sensor values.
func ReadPackage(workoutType string, data []float64) (domain.Workout, error) {
	newWorkout, ok := constructors[workoutType]
	if !ok {
		return nil, &domain.UnsupportedWorkoutTypeError{Code: workoutType}
	}
	return newWorkout(data)
}

// ProcessPackage reads one sensor package and returns its formatted
// summary line.
func ProcessPackage(workoutType string, data []float64) (string, error) {
	w, err := ReadPackage(workoutType, data)
	if err != nil {
		return "", err
	}
	return domain.NewSummary(w).String(), nil
}
