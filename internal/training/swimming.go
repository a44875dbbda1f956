package training

const (
	swimLenStep                  = 1.38 // metres per stroke
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Swimming is a pool session counted in strokes. LengthPool is in metres,
// CountPool is the number of laps.
type Swimming struct {
	Training
	LengthPool float64
	CountPool  int
}

func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	t := NewTraining(action, duration, weight)
	t.lenStep = swimLenStep
	return Swimming{Training: t, LengthPool: lengthPool, CountPool: countPool}
}

func (s Swimming) Name() string { return "Swimming" }

// MeanSpeed is derived from pool length and lap count, not from strokes.
func (s Swimming) MeanSpeed() (float64, error) {
	if s.Duration == 0 {
		return 0, ErrDivisionByZero
	}
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration, nil
}

// SpentCalories is (speed + 1.1) * 2 * weight.
func (s Swimming) SpentCalories() (float64, error) {
	speed, err := s.MeanSpeed()
	if err != nil {
		return 0, err
	}
	return (speed + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.Weight, nil
}
