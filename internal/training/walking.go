package training

import (
	"fmt"
	"math"
)

const (
	walkCaloriesWeightMultiplier = 0.035
	walkSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walking session; Height is in cm.
type SportsWalking struct {
	Training
	Height float64
}

func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{Training: NewTraining(action, duration, weight), Height: height}
}

func (w SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories is (0.035*weight + (speed² floordiv height)*0.029*weight) * minutes.
// The speed term is floored, so for ordinary speeds and heights it drops out.
func (w SportsWalking) SpentCalories() (float64, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return 0, err
	}
	if w.Height == 0 {
		return 0, fmt.Errorf("%w: height is zero", ErrDivisionByZero)
	}
	speedTerm := floorDiv(speed*speed, w.Height) * walkSpeedHeightMultiplier * w.Weight
	return (walkCaloriesWeightMultiplier*w.Weight + speedTerm) * (w.Duration * minInH), nil
}

// floorDiv is float floor division computed from the remainder, so a quotient
// that rounds up to a whole number still floors to the integer below it.
// b must be non-zero.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	fd := math.Floor(div)
	if div-fd > 0.5 {
		fd += 1
	}
	return fd
}
