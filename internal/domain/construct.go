package domain

// Raw sensor packages carry positional values: actions, duration and
// weight first, then the type-specific fields in declaration order.
const (
	runningArity       = 3
	sportsWalkingArity = 4
	swimmingArity      = 5
)

func checkArity(code string, want int, data []float64) error {
	if len(data) != want {
		return &ArityMismatchError{Code: code, Want: want, Got: len(data)}
	}
	return nil
}

func checkPositive(field string, value float64) error {
	if value <= 0 {
		return &InvalidMeasurementError{Field: field, Value: value}
	}
	return nil
}

// NewRunning builds a Running record from raw sensor values
// (actions, duration in hours, weight in kg).
func NewRunning(data []float64) (Workout, error) {
	if err := checkArity(CodeRunning, runningArity, data); err != nil {
		return nil, err
	}
	if err := checkPositive("duration", data[1]); err != nil {
		return nil, err
	}
	if err := checkPositive("weight", data[2]); err != nil {
		return nil, err
	}
	return Running{
		Actions:  int(data[0]),
		Duration: data[1],
		Weight:   data[2],
	}, nil
}

// NewSportsWalking builds a SportsWalking record from raw sensor
// values (actions, duration in hours, weight in kg, height in cm).
func NewSportsWalking(data []float64) (Workout, error) {
	if err := checkArity(CodeSportsWalking, sportsWalkingArity, data); err != nil {
		return nil, err
	}
	if err := checkPositive("duration", data[1]); err != nil {
		return nil, err
	}
	if err := checkPositive("weight", data[2]); err != nil {
		return nil, err
	}
	if err := checkPositive("height", data[3]); err != nil {
		return nil, err
	}
	return SportsWalking{
		Actions:  int(data[0]),
		Duration: data[1],
		Weight:   data[2],
		Height:   data[3],
	}, nil
}

// NewSwimming builds a Swimming record from raw sensor values
// (actions, duration in hours, weight in kg, pool length in metres,
// lap count).
func NewSwimming(data []float64) (Workout, error) {
	if err := checkArity(CodeSwimming, swimmingArity, data); err != nil {
		return nil, err
	}
	if err := checkPositive("duration", data[1]); err != nil {
		return nil, err
	}
	if err := checkPositive("weight", data[2]); err != nil {
		return nil, err
	}
	if err := checkPositive("pool length", data[3]); err != nil {
		return nil, err
	}
	return Swimming{
		Actions:    int(data[0]),
		Duration:   data[1],
		Weight:     data[2],
		PoolLength: data[3],
		PoolCount:  int(data[4]),
	}, nil
}
