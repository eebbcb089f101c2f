package domain

import "fmt"

// Summary is the derived report for a single workout. Values are
// stored unrounded; rounding happens only when rendering.
type Summary struct {
	WorkoutType string
	Duration    float64 // hours
	Distance    float64 // km
	MeanSpeed   float64 // km/h
	Calories    float64 // kcal
}

// NewSummary evaluates all metrics of the workout once.
func NewSummary(w Workout) Summary {
	return Summary{
		WorkoutType: w.Name(),
		Duration:    w.DurationHours(),
		Distance:    w.Distance(),
		MeanSpeed:   w.MeanSpeed(),
		Calories:    w.Calories(),
	}
}

// String renders the single-line report, each numeric field with
// exactly three digits after the decimal point.
func (s Summary) String() string {
	return fmt.Sprintf(
		"Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.WorkoutType, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
}
