package runner

import (
	"fmt"
	"strings"
)

// Algorithm names an algorithm understood by a Runner.
type Algorithm string

// Supported algorithms.
const (
	BFS           Algorithm = "bfs"
	DFS           Algorithm = "dfs"
	Topological   Algorithm = "topological_sort"
	Dijkstra      Algorithm = "dijkstra"
	BellmanFord   Algorithm = "bellman_ford"
	Prim          Algorithm = "prim"
	Kruskal       Algorithm = "kruskal"
	FordFulkerson Algorithm = "ford_fulkerson"
	Hierholzer    Algorithm = "hierholzer"
)

// Info describes one algorithm for listings.
type Info struct {
	ID          Algorithm `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// Needs lists the request parameters the algorithm reads.
	Needs []string `json:"needs,omitempty"`
}

var catalog = []Info{
	{BFS, "Breadth-First Search", "Visits nodes level by level from the start node.", []string{"start_node"}},
	{DFS, "Depth-First Search", "Explores as deep as possible before backtracking.", []string{"start_node"}},
	{Topological, "Topological Sort", "Orders the nodes of a directed acyclic graph so every edge points forward.", nil},
	{Dijkstra, "Dijkstra", "Shortest paths from a source with non-negative weights.", []string{"source", "target"}},
	{BellmanFord, "Bellman-Ford", "Shortest paths with negative weights; detects negative cycles.", []string{"source"}},
	{Prim, "Prim", "Minimum spanning tree grown from a start node.", []string{"start_node"}},
	{Kruskal, "Kruskal", "Minimum spanning tree by sorted edge weights.", nil},
	{FordFulkerson, "Ford-Fulkerson (Edmonds-Karp)", "Maximum flow from source to sink using BFS augmenting paths.", []string{"source", "target"}},
	{Hierholzer, "Hierholzer", "Eulerian circuit or trail through every edge.", []string{"start_node"}},
}

// Catalog returns every supported algorithm in a stable order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the ids of every supported algorithm.
func Names() []string {
	out := make([]string, len(catalog))
	for i, in := range catalog {
		out[i] = string(in.ID)
	}
	return out
}

// Valid reports whether a is supported.
func (a Algorithm) Valid() bool {
	for _, in := range catalog {
		if in.ID == a {
			return true
		}
	}
	return false
}

// ParseAlgorithm normalises s (case, surrounding space, '-' for '_').
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}
