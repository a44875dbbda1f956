package training

import (
	"fmt"
)

// InfoMessage is the computed summary of one session.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line with three fractional digits per value.
func (m InfoMessage) Message() string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Info computes the summary of w. Errors from the speed or calorie formulas
// are wrapped with the training name.
func Info(w Workout) (InfoMessage, error) {
	speed, err := w.MeanSpeed()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s mean speed: %w", w.Name(), err)
	}
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("%s spent calories: %w", w.Name(), err)
	}
	return InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.Hours(),
		Distance:     w.Distance(),
		Speed:        speed,
		Calories:     calories,
	}, nil
}
