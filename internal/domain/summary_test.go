package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ftracker/internal/domain"
)

func TestNewSummary(t *testing.T) {
	s := domain.NewSummary(domain.Swimming{
		Actions: 720, Duration: 1, Weight: 80, PoolLength: 25, PoolCount: 40,
	})
	assert.Equal(t, "Swimming", s.WorkoutType)
	assert.InDelta(t, 1.0, s.Duration, 1e-9)
	assert.InDelta(t, 0.9936, s.Distance, 1e-9)
	assert.InDelta(t, 1.0, s.MeanSpeed, 1e-9)
	assert.InDelta(t, 336.0, s.Calories, 1e-6)
}

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name    string
		summary domain.Summary
		want    string
	}{
		{
			"three decimals, no padding drop",
			domain.Summary{WorkoutType: "Running", Duration: 1, Distance: 0.468, MeanSpeed: 0.468, Calories: 10},
			"Workout type: Running; Duration: 1.000 h.; Distance: 0.468 km; Avg speed: 0.468 km/h; Calories burned: 10.000.",
		},
		{
			"rounds to three decimals",
			domain.Summary{WorkoutType: "Swimming", Duration: 1, Distance: 0.9936, MeanSpeed: 1, Calories: 336},
			"Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.",
		},
		{
			"fractional everything",
			domain.Summary{WorkoutType: "SportsWalking", Duration: 1.5, Distance: 5.8501, MeanSpeed: 3.90006, Calories: 349.251747525},
			"Workout type: SportsWalking; Duration: 1.500 h.; Distance: 5.850 km; Avg speed: 3.900 km/h; Calories burned: 349.252.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.summary.String())
		})
	}
}
