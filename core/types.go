// SPDX-License-Identifier: MIT

// File: types.go
// Role: Value types (Point, Node, Edge, Snapshot, NodeDelta), sentinel errors,
//       GraphOption and the NewGraph constructor.
// Determinism:
//   - nodeOrder/edgeOrder keep insertion order; every listing follows them.
// Concurrency:
//   - One sync.RWMutex guards every field of Graph. Mutations hold the write
//     lock for their whole duration, so no partial state is ever observable.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node id is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates an explicit id that is already taken.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDirectednessLocked indicates SetDirected was called while edges exist.
	ErrDirectednessLocked = errors.New("core: directedness is locked while edges exist")
)

// Point is a position in world coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Node is a positioned vertex. An empty Label renders as the ID.
type Node struct {
	ID    string  `json:"id" yaml:"id"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Pos returns the node position as a Point.
func (n Node) Pos() Point { return Point{X: n.X, Y: n.Y} }

// DisplayLabel returns Label, falling back to ID.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}
	return n.Label
}

// Edge connects From→To. From and To always reference existing nodes while
// the edge lives in a Graph.
//
// ControlPoint is nil until the user bends the edge; once set it is only ever
// translated by node moves, never recomputed.
type Edge struct {
	ID           string  `json:"id" yaml:"id"`
	From         string  `json:"source" yaml:"source"`
	To           string  `json:"target" yaml:"target"`
	Weight       float64 `json:"weight" yaml:"weight"`
	Directed     bool    `json:"isDirected" yaml:"isDirected"`
	ControlPoint *Point  `json:"controlPoint,omitempty" yaml:"controlPoint,omitempty"`
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to id (id itself for loops).
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// clone returns a copy of e with its own ControlPoint.
func (e Edge) clone() Edge {
	if e.ControlPoint != nil {
		cp := *e.ControlPoint
		e.ControlPoint = &cp
	}
	return e
}

// Snapshot is a complete, independent copy of a graph: the unit stored in
// history, sent to algorithm runners and written by exporters.
type Snapshot struct {
	Nodes    []Node `json:"nodes" yaml:"nodes"`
	Edges    []Edge `json:"edges" yaml:"edges"`
	Directed bool   `json:"isDirected" yaml:"isDirected"`
}

// Clone returns a deep copy of s.
// Complexity: O(V+E).
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Directed: s.Directed}
	if s.Nodes != nil {
		out.Nodes = make([]Node, len(s.Nodes))
		copy(out.Nodes, s.Nodes)
	}
	if s.Edges != nil {
		out.Edges = make([]Edge, len(s.Edges))
		for i := range s.Edges {
			out.Edges[i] = s.Edges[i].clone()
		}
	}
	return out
}

// Empty reports whether s holds no nodes.
func (s Snapshot) Empty() bool { return len(s.Nodes) == 0 }

// NodeDelta is one entry of a batch move.
type NodeDelta struct {
	ID string
	DX float64
	DY float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets the initial edge mode.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the editable graph model.
//
// nodes/edges are id-keyed; nodeOrder/edgeOrder keep insertion order;
// incidence[v] lists ids of edges touching v (a loop appears once).
// nodeSeq/edgeSeq are never decremented.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
	incidence map[string][]string

	nodeSeq uint64
	edgeSeq uint64
}

// NewGraph creates an empty undirected Graph and applies opts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		incidence: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromSnapshot builds a Graph holding a copy of s.
func FromSnapshot(s Snapshot) *Graph {
	g := NewGraph()
	g.Restore(s)
	return g
}
