package ingest

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/meltforce/ftracker/internal/training"
)

// Package is one sensor reading: a workout code and the values for its
// fields in declared order.
type Package struct {
	Code string    `yaml:"code" json:"code"`
	Data []float64 `yaml:"data" json:"data"`
}

// Report is the computed summary of one package.
type Report struct {
	ID      uuid.UUID            `json:"id"`
	Code    string               `json:"code"`
	Info    training.InfoMessage `json:"info"`
	Message string               `json:"message"`
}

// Result holds the outcome of an ingest operation. Reports are in input order
// and stop at the first failing package.
type Result struct {
	PackagesReceived int      `json:"packages_received"`
	PackagesComputed int      `json:"packages_computed"`
	Reports          []Report `json:"reports"`
}

// PackageError reports which package of a batch failed.
type PackageError struct {
	Index int
	Code  string
	Err   error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %d (%s): %v", e.Index, e.Code, e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }
