package sensor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/training"
)

// Provider turns sensor packages into training reports.
type Provider struct {
	log *slog.Logger
}

// NewProvider creates a new sensor package provider.
func NewProvider(log *slog.Logger) *Provider {
	return &Provider{log: log}
}

// Compute dispatches one package and renders its summary.
func (p *Provider) Compute(ctx context.Context, pkg ingest.Package) (ingest.Report, error) {
	if err := ctx.Err(); err != nil {
		return ingest.Report{}, err
	}
	w, err := training.Read(pkg.Code, pkg.Data)
	if err != nil {
		return ingest.Report{}, err
	}
	info, err := training.Info(w)
	if err != nil {
		return ingest.Report{}, err
	}
	return ingest.Report{
		ID:      uuid.New(),
		Code:    pkg.Code,
		Info:    info,
		Message: info.Message(),
	}, nil
}

// Ingest computes packages in order and stops at the first failure. The
// returned result holds the reports computed before it; the error is an
// *ingest.PackageError.
func (p *Provider) Ingest(ctx context.Context, pkgs []ingest.Package) (*ingest.Result, error) {
	result := &ingest.Result{PackagesReceived: len(pkgs), Reports: make([]ingest.Report, 0, len(pkgs))}

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("ingest interrupted: %w", err)
		}
		report, err := p.Compute(ctx, pkg)
		if err != nil {
			p.log.Warn("package rejected", "index", i, "code", pkg.Code, "error", err)
			return result, &ingest.PackageError{Index: i, Code: pkg.Code, Err: err}
		}
		p.log.Debug("package computed", "index", i, "code", pkg.Code, "id", report.ID)
		result.Reports = append(result.Reports, report)
		result.PackagesComputed++
	}

	return result, nil
}
