// Package domain holds the workout records and the per-type
// distance, speed, and calorie formulas.
package domain

// Workout-type codes as sent by the sensor packages.
const (
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
	CodeSwimming      = "SWM"
)

const (
	stepLength     = 0.65 // metres per step (running, walking)
	swimStepLength = 1.38 // metres per stroke (swimming)
	mPerKm         = 1000
	minPerHour     = 60
	cmPerM         = 100
	kmhToMs        = 0.278

	runSpeedMultiplier = 18
	runSpeedShift      = 1.79
	walkWeightFactor   = 0.035
	walkSpeedFactor    = 0.029
	swimSpeedShift     = 1.1
	swimWeightFactor   = 2
)

// Workout is a single recorded exercise session. Implementations are
// immutable value types; every metric is derived on demand from the
// raw measurements.
type Workout interface {
	// Name returns the display name of the workout type.
	Name() string
	// DurationHours returns the session length in hours.
	DurationHours() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed over the session in km/h.
	MeanSpeed() float64
	// Calories returns the estimated energy expenditure in kcal.
	Calories() float64
}

func stepDistance(actions int, step float64) float64 {
	return float64(actions) * step / mPerKm
}

// Running is a running session.
type Running struct {
	Actions  int     // steps taken
	Duration float64 // hours
	Weight   float64 // kg
}

func (r Running) Name() string           { return "Running" }
func (r Running) DurationHours() float64 { return r.Duration }

func (r Running) Distance() float64 {
	return stepDistance(r.Actions, stepLength)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() + runSpeedShift) *
		r.Weight / mPerKm * r.Duration * minPerHour
}

// SportsWalking is a race-walking session.
type SportsWalking struct {
	Actions  int     // steps taken
	Duration float64 // hours
	Weight   float64 // kg
	Height   float64 // cm
}

func (w SportsWalking) Name() string           { return "SportsWalking" }
func (w SportsWalking) DurationHours() float64 { return w.Duration }

func (w SportsWalking) Distance() float64 {
	return stepDistance(w.Actions, stepLength)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

func (w SportsWalking) Calories() float64 {
	speedMs := w.MeanSpeed() * kmhToMs
	return (walkWeightFactor*w.Weight +
		speedMs*speedMs/(w.Height/cmPerM)*walkSpeedFactor*w.Weight) *
		w.Duration * minPerHour
}

// Swimming is a pool swimming session.
type Swimming struct {
	Actions    int     // strokes taken
	Duration   float64 // hours
	Weight     float64 // kg
	PoolLength float64 // metres
	PoolCount  int     // laps swum
}

func (s Swimming) Name() string           { return "Swimming" }
func (s Swimming) DurationHours() float64 { return s.Duration }

// Distance reports the stroke-based distance. Mean speed does not use
// it; both are kept so the two metrics stay independently defined.
func (s Swimming) Distance() float64 {
	return stepDistance(s.Actions, swimStepLength)
}

func (s Swimming) MeanSpeed() float64 {
	return s.PoolLength * float64(s.PoolCount) / mPerKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) *
		swimWeightFactor * s.Weight * s.Duration
}
