package training

import (
	"fmt"
	"math"
)

// Kind describes a workout code accepted by Read.
type Kind struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`

	build func(v []float64) Workout
}

// kinds is the dispatch table; Fields gives the positional order of Read data.
var kinds = []Kind{
	{
		Code:   "SWM",
		Name:   "Swimming",
		Fields: []string{"action", "duration", "weight", "length_pool", "count_pool"},
		build: func(v []float64) Workout {
			return NewSwimming(int(v[0]), v[1], v[2], v[3], int(v[4]))
		},
	},
	{
		Code:   "RUN",
		Name:   "Running",
		Fields: []string{"action", "duration", "weight"},
		build: func(v []float64) Workout {
			return NewRunning(int(v[0]), v[1], v[2])
		},
	},
	{
		Code:   "WLK",
		Name:   "SportsWalking",
		Fields: []string{"action", "duration", "weight", "height"},
		build: func(v []float64) Workout {
			return NewSportsWalking(int(v[0]), v[1], v[2], v[3])
		},
	},
}

// countFields are integral in every kind that has them.
var countFields = map[string]bool{"action": true, "count_pool": true}

// Catalog lists the accepted workout codes in dispatch order.
func Catalog() []Kind {
	out := make([]Kind, len(kinds))
	for i, k := range kinds {
		out[i] = Kind{Code: k.Code, Name: k.Name, Fields: append([]string(nil), k.Fields...)}
	}
	return out
}

func lookup(code string) (Kind, bool) {
	for _, k := range kinds {
		if k.Code == code {
			return k, true
		}
	}
	return Kind{}, false
}

// Read builds the workout for code from sensor values given in the kind's
// field order.
func Read(code string, data []float64) (Workout, error) {
	k, ok := lookup(code)
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(data) != len(k.Fields) {
		return nil, &ArgumentCountError{Code: code, Expected: len(k.Fields), Actual: len(data)}
	}
	for i, v := range data {
		field := k.Fields[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s %s: %w: %v", code, field, ErrInvalidValue, v)
		}
		// int(v) is undefined for values outside the int range.
		if countFields[field] && (v < 0 || v != math.Trunc(v) || v >= float64(math.MaxInt)) {
			return nil, fmt.Errorf("%s %s: %w: %v is not a count", code, field, ErrInvalidValue, v)
		}
	}
	return k.build(data), nil
}
