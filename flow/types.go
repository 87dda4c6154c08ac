// Package flow defines options, results and errors for maximum-flow
// computation.
package flow

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSourceNotFound indicates that the specified source vertex does not exist.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound indicates that the specified sink vertex does not exist.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrSameSourceSink indicates that source and sink are the same vertex.
var ErrSameSourceSink = errors.New("flow: source equals sink")

// EdgeError reports an edge with negative capacity.
type EdgeError struct {
	EdgeID   string
	From, To string
	Cap      float64
}

// Error implements error.
func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %s %q→%q: %g", e.EdgeID, e.From, e.To, e.Cap)
}

// Augmentation describes one augmenting path.
type Augmentation struct {
	// Nodes lists the path from source to sink.
	Nodes []string
	// Edges lists the graph edge used between consecutive Nodes.
	Edges []string
	// Amount is the bottleneck pushed along the path.
	Amount float64
	// Total is the flow value after this augmentation.
	Total float64
}

// FlowOptions configures max-flow execution. A nil *FlowOptions means defaults.
type FlowOptions struct {
	// Epsilon is the tolerance under which a residual capacity counts as zero.
	// Defaults to 1e-9.
	Epsilon float64

	// OnAugment, if non-nil, observes every augmenting path.
	OnAugment func(a Augmentation)

	// Logger receives one Debug record per augmentation. Nil discards.
	Logger *slog.Logger
}

// EdgeFlow is the flow carried by one graph edge, oriented in the direction
// the flow actually travels.
type EdgeFlow struct {
	EdgeID   string
	From, To string
	Flow     float64
	Capacity float64
}

// Result holds a maximum flow.
type Result struct {
	// Value is the total flow from source to sink.
	Value float64
	// Edges maps every graph edge id to its flow (zero flow included).
	Edges map[string]EdgeFlow
	// SourceSide lists the vertices reachable from source in the final
	// residual network, in BFS order; its boundary is a minimum cut.
	SourceSide []string
	// Augmentations counts the augmenting paths used.
	Augmentations int
}
