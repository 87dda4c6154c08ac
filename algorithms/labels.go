package algorithms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

const infinity = "∞"

// number formats a weight or distance: integers without a fraction, +Inf as ∞.
func number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return infinity
	case math.IsInf(v, -1):
		return "-" + infinity
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// arrow joins ids as a path.
func arrow(ids []string) string { return strings.Join(ids, " → ") }

// startNode returns id when g has it, else the first node.
func startNode(g *core.Graph, id string) string {
	if id != "" && g.HasNode(id) {
		return id
	}
	return g.NodeIDs()[0]
}

// sourceNode resolves a source parameter: empty means the first node, an
// unknown id is a precondition failure.
func sourceNode(g *core.Graph, alg runner.Algorithm, id string) (string, error) {
	if id == "" {
		return g.NodeIDs()[0], nil
	}
	if !g.HasNode(id) {
		return "", &PreconditionError{Algorithm: alg, Reason: fmt.Sprintf("source node %q does not exist%s", id, available(g))}
	}
	return id, nil
}

// targetNode resolves an optional target parameter.
func targetNode(g *core.Graph, alg runner.Algorithm, id string) (string, error) {
	if id != "" && !g.HasNode(id) {
		return "", &PreconditionError{Algorithm: alg, Reason: fmt.Sprintf("target node %q does not exist%s", id, available(g))}
	}
	return id, nil
}

// available lists up to five node ids for error messages.
func available(g *core.Graph) string {
	ids := g.NodeIDs()
	more := ""
	if len(ids) > 5 {
		ids, more = ids[:5], ", …"
	}
	return "; available nodes: " + strings.Join(ids, ", ") + more
}

// paintNodes returns overlays colouring every id.
func paintNodes(ids []string, c step.Color) []step.Overlay {
	out := make([]step.Overlay, 0, len(ids))
	for _, id := range ids {
		out = append(out, step.Node(id, c))
	}
	return out
}

// paintEdges returns overlays colouring every edge id.
func paintEdges(ids []string, c step.Color) []step.Overlay {
	out := make([]step.Overlay, 0, len(ids))
	for _, id := range ids {
		out = append(out, step.Edge(id, c))
	}
	return out
}
