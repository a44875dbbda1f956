package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(c Computer, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ftracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("ftracker fitness tracker. Compute distance, mean speed and spent calories for running (RUN), sports walking (WLK) and swimming (SWM) sensor packages."),
	)

	h := &handlers{c: c, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolComputeTraining, Handler: h.computeTraining},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
	)

	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypes},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	c   Computer
	log *slog.Logger
}

var resWorkoutTypes = mcp.NewResource(
	"ftracker://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Accepted workout codes with the ordered list of sensor fields each one takes"),
	mcp.WithMIMEType("application/json"),
)
