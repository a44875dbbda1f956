// Package training computes distance, mean speed and spent calories for
// running, sports walking and swimming sessions recorded by a fitness tracker.
package training

const (
	lenStep = 0.65 // metres per step
	mInKm   = 1000
	minInH  = 60
)

// Workout is the capability set shared by every training kind.
type Workout interface {
	// Name is the training type shown in the summary line.
	Name() string
	// Hours is the session duration in hours.
	Hours() float64
	// Distance is the covered distance in km.
	Distance() float64
	// MeanSpeed is the average speed in km/h.
	MeanSpeed() (float64, error)
	// SpentCalories is the energy spent in kcal.
	SpentCalories() (float64, error)
}

// Training holds the readings common to all kinds: the number of actions
// (steps or strokes), duration in hours and body weight in kg.
//
// Training on its own has no calorie formula. Build sessions with NewRunning,
// NewSportsWalking, NewSwimming or Read.
type Training struct {
	Action   int
	Duration float64
	Weight   float64

	lenStep float64
}

// NewTraining returns a base training with the default step length.
func NewTraining(action int, duration, weight float64) Training {
	return Training{Action: action, Duration: duration, Weight: weight, lenStep: lenStep}
}

// StepLength returns the metres covered per action.
func (t Training) StepLength() float64 {
	return t.lenStep
}

func (t Training) Name() string { return "Training" }

func (t Training) Hours() float64 { return t.Duration }

func (t Training) Distance() float64 {
	return float64(t.Action) * t.lenStep / mInKm
}

func (t Training) MeanSpeed() (float64, error) {
	if t.Duration == 0 {
		return 0, ErrDivisionByZero
	}
	return t.Distance() / t.Duration, nil
}

func (t Training) SpentCalories() (float64, error) {
	return 0, ErrNotImplemented
}
