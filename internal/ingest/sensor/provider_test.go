package sensor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIngestDemo verifies the demonstration packages produce the expected
// summary lines in input order.
func TestIngestDemo(t *testing.T) {
	p := NewProvider(slog.Default())

	result, err := p.Ingest(context.Background(), DemoPackages())
	require.NoError(t, err)

	assert.Equal(t, 3, result.PackagesReceived)
	assert.Equal(t, 3, result.PackagesComputed)
	require.Len(t, result.Reports, 3)

	want := []string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}
	for i, r := range result.Reports {
		assert.Equal(t, want[i], r.Message)
		assert.NotEqual(t, uuid.Nil, r.ID)
	}
}

// TestIngestStopsAtFirstFailure verifies that packages after a failing one
// are not computed and the failing index is reported.
func TestIngestStopsAtFirstFailure(t *testing.T) {
	p := NewProvider(slog.Default())
	pkgs := []ingest.Package{
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "XXX", Data: []float64{1}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	result, err := p.Ingest(context.Background(), pkgs)

	var pkgErr *ingest.PackageError
	require.ErrorAs(t, err, &pkgErr)
	assert.Equal(t, 1, pkgErr.Index)
	assert.Equal(t, "XXX", pkgErr.Code)

	var unknown *training.UnknownWorkoutTypeError
	assert.ErrorAs(t, err, &unknown)

	assert.Equal(t, 1, result.PackagesComputed)
	assert.Len(t, result.Reports, 1)
}

func TestIngestZeroDuration(t *testing.T) {
	p := NewProvider(slog.Default())

	_, err := p.Ingest(context.Background(), []ingest.Package{{Code: "SWM", Data: []float64{720, 0, 80, 25, 40}}})
	assert.ErrorIs(t, err, training.ErrDivisionByZero)
}

func TestIngestCanceled(t *testing.T) {
	p := NewProvider(slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Ingest(ctx, DemoPackages())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Reports)
}
