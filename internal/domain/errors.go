package domain

import "fmt"

// UnsupportedWorkoutTypeError indicates a workout-type code outside
// the recognised set.
type UnsupportedWorkoutTypeError struct {
	Code string
}

func (e *UnsupportedWorkoutTypeError) Error() string {
	return fmt.Sprintf("unsupported workout type %q", e.Code)
}

// ArityMismatchError indicates a sensor package whose value count
// does not match the workout type's field count.
type ArityMismatchError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("workout type %q needs %d values, got %d", e.Code, e.Want, e.Got)
}

// InvalidMeasurementError indicates a measurement that must be
// strictly positive but is not.
type InvalidMeasurementError struct {
	Field string
	Value float64
}

func (e *InvalidMeasurementError) Error() string {
	return fmt.Sprintf("%s must be > 0, got %v", e.Field, e.Value)
}
