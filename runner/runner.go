// Package runner is the boundary between the editor and whatever executes
// graph algorithms: an in-process tracer or a remote HTTP service.
//
// The editor only needs an eventual list of steps or an error; it does not
// retry and makes no assumption about latency.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/step"
)

// Sentinel errors.
var (
	// ErrUnsupportedAlgorithm indicates an unknown algorithm id.
	ErrUnsupportedAlgorithm = errors.New("runner: unsupported algorithm")

	// ErrMissingGraph indicates a request without a graph document.
	ErrMissingGraph = errors.New("runner: missing graph")
)

// Request asks for one algorithm run over a graph.
type Request struct {
	Algorithm Algorithm     `json:"algorithm" validate:"required"`
	Graph     core.Snapshot `json:"graph"`
	Source    string        `json:"source,omitempty"`
	Target    string        `json:"target,omitempty"`
	StartNode string        `json:"start_node,omitempty"`
}

// Response carries the produced frames.
type Response struct {
	Name  string      `json:"name"`
	Steps []step.Step `json:"steps"`
}

// Runner executes algorithm requests.
type Runner interface {
	Run(ctx context.Context, req Request) (Response, error)
}

// Func adapts a function to Runner.
type Func func(ctx context.Context, req Request) (Response, error)

// Run calls f.
func (f Func) Run(ctx context.Context, req Request) (Response, error) { return f(ctx, req) }

// StatusError is a non-2xx answer from a remote runner.
type StatusError struct {
	Code    int
	Message string
	// Supported is filled when the server rejected the algorithm id.
	Supported []string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("runner: server returned %d: %s", e.Code, e.Message)
}
