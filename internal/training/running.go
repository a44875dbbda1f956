package training

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// Running is a running session counted in steps.
type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) Running {
	return Running{Training: NewTraining(action, duration, weight)}
}

func (r Running) Name() string { return "Running" }

// SpentCalories is (18*speed - 20) * weight / 1000 * minutes.
func (r Running) SpentCalories() (float64, error) {
	speed, err := r.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (runCaloriesSpeedMultiplier*speed - runCaloriesSpeedShift) *
		r.Weight / mInKm * (r.Duration * minInH), nil
}
