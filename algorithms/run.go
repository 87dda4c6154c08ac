package algorithms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

var tracer = otel.Tracer("graphstudio.algorithms")

var (
	// runsTotal counts runs by algorithm and result.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphstudio_algorithm_runs_total",
		Help: "Total algorithm runs by algorithm and result",
	}, []string{"algorithm", "result"})

	// runDuration tracks tracer latency.
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphstudio_algorithm_run_duration_seconds",
		Help:    "Algorithm run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"algorithm"})

	// runSteps tracks the number of frames per successful run.
	runSteps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphstudio_algorithm_steps",
		Help:    "Number of steps produced per algorithm run",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	}, []string{"algorithm"})
)

// ErrPrecondition marks requests whose parameters cannot drive the algorithm.
var ErrPrecondition = errors.New("algorithms: precondition failed")

// PreconditionError explains why a request was rejected. Wraps ErrPrecondition.
type PreconditionError struct {
	Algorithm runner.Algorithm
	Reason    string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrPrecondition, e.Algorithm, e.Reason)
}

// Unwrap lets errors.Is match ErrPrecondition.
func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// traceFunc runs one algorithm over a non-empty graph and records its frames.
type traceFunc func(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error

var tracers = map[runner.Algorithm]traceFunc{
	runner.BFS:           traceBFS,
	runner.DFS:           traceDFS,
	runner.Topological:   traceTopological,
	runner.Dijkstra:      traceDijkstra,
	runner.BellmanFord:   traceBellmanFord,
	runner.Prim:          tracePrim,
	runner.Kruskal:       traceKruskal,
	runner.FordFulkerson: traceFordFulkerson,
	runner.Hierholzer:    traceHierholzer,
}

// Catalog lists the algorithms Run understands.
func Catalog() []runner.Info { return runner.Catalog() }

// Run executes req in-process and returns its frames.
//
// Errors:
//   - runner.ErrUnsupportedAlgorithm for an unknown algorithm id.
//   - *PreconditionError for a source/target that cannot be used.
//   - ctx.Err() on cancellation.
func Run(ctx context.Context, req runner.Request) (runner.Response, error) {
	fn, ok := tracers[req.Algorithm]
	if !ok {
		return runner.Response{}, fmt.Errorf("%w: %q", runner.ErrUnsupportedAlgorithm, req.Algorithm)
	}
	name := string(req.Algorithm)

	ctx, span := tracer.Start(ctx, "algorithms.Run",
		trace.WithAttributes(
			attribute.String("algorithm", name),
			attribute.Int("graph.nodes", len(req.Graph.Nodes)),
			attribute.Int("graph.edges", len(req.Graph.Edges)),
			attribute.Bool("graph.directed", req.Graph.Directed),
		),
	)
	defer span.End()

	start := time.Now()
	g := core.FromSnapshot(req.Graph)
	rec := step.NewRecorder()

	var err error
	if g.NodeCount() == 0 {
		rec.Emit("The graph is empty. Add at least one node.")
	} else {
		err = fn(ctx, g, req, rec)
	}
	runDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		runsTotal.WithLabelValues(name, resultLabel(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return runner.Response{}, err
	}

	steps := rec.Steps()
	runsTotal.WithLabelValues(name, "ok").Inc()
	runSteps.WithLabelValues(name).Observe(float64(len(steps)))
	span.SetAttributes(attribute.Int("steps", len(steps)))
	span.SetStatus(codes.Ok, "")

	return runner.Response{Name: name, Steps: steps}, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrPrecondition):
		return "precondition"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// Local is an in-process runner.Runner.
type Local struct {
	logger *slog.Logger
}

var _ runner.Runner = (*Local)(nil)

// NewLocal returns a Local runner. A nil logger discards.
func NewLocal(logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Local{logger: logger}
}

// Run implements runner.Runner.
func (l *Local) Run(ctx context.Context, req runner.Request) (runner.Response, error) {
	start := time.Now()
	resp, err := Run(ctx, req)
	if err != nil {
		l.logger.Warn("algorithm run failed",
			slog.String("algorithm", string(req.Algorithm)),
			slog.String("error", err.Error()),
		)
		return resp, err
	}
	l.logger.Debug("algorithm run finished",
		slog.String("algorithm", resp.Name),
		slog.Int("steps", len(resp.Steps)),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
