package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/training"
)

var toolComputeTraining = mcp.NewTool("compute_training",
	mcp.WithDescription("Compute a training summary from one sensor package. Returns type, duration (h), distance (km), mean speed (km/h), spent calories (kcal) and the formatted summary line."),
	mcp.WithString("code", mcp.Required(), mcp.Description("Workout code"), mcp.Enum("SWM", "RUN", "WLK")),
	mcp.WithArray("data", mcp.Required(),
		mcp.Description("Sensor values in field order. RUN: action, duration, weight. WLK: action, duration, weight, height. SWM: action, duration, weight, length_pool, count_pool."),
		mcp.Items(map[string]any{"type": "number"}),
	),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List accepted workout codes and the sensor fields each one takes."),
)

func (h *handlers) computeTraining(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("code parameter is required"), nil
	}

	data, err := numbers(req.GetArguments()["data"])
	if err != nil {
		return mcp.NewToolResultError("data parameter: " + err.Error()), nil
	}

	report, err := h.c.Compute(ctx, ingest.Package{Code: code, Data: data})
	if err != nil {
		h.log.Warn("mcp compute_training", "code", code, "error", err)
		return mcp.NewToolResultError("compute failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(training.Catalog())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) workoutTypes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(training.Catalog())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// numbers converts a decoded JSON array argument to float64 values.
func numbers(v any) ([]float64, error) {
	if v == nil {
		return nil, fmt.Errorf("is required")
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be an array of numbers")
	}
	out := make([]float64, len(items))
	for i, item := range items {
		switch n := item.(type) {
		case float64:
			out[i] = n
		case int:
			out[i] = float64(n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("item %d is %T, not a number", i, item)
		}
	}
	return out, nil
}
