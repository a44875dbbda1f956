package mcp

import (
	"context"

	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/ingest/sensor"
	"github.com/meltforce/ftracker/internal/upload"
)

// Computer turns one sensor package into a report. *sensor.Provider computes
// in process; *upload.Client asks a remote ftracker server.
type Computer interface {
	Compute(ctx context.Context, pkg ingest.Package) (ingest.Report, error)
}

// Compile-time checks for both modes.
var (
	_ Computer = (*sensor.Provider)(nil)
	_ Computer = (*upload.Client)(nil)
)
