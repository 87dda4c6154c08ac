// File: edgelist.go
// Role: Edge-list text import and export.
// Determinism:
//   - Nodes appear in first-seen order, edges in line order.
//   - Edge ids are "e-{k}" where k counts non-blank lines from 0.

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
)

// ParseEdgeList reads "source target [weight]" lines.
//
// Rules:
//   - blank lines are ignored and do not advance the edge counter;
//   - lines with fewer than two tokens are skipped;
//   - a weight token that is not a finite number skips the line;
//   - a line longer than 64 KiB is skipped;
//   - a missing weight is 1, or 0 under WithWeighted(false);
//   - tokens past the third are ignored.
//
// Complexity: O(L) for L lines.
func ParseEdgeList(r io.Reader, opts ...Option) (core.Snapshot, error) {
	o := gather(opts)
	s := core.Snapshot{Directed: o.Directed}
	seen := make(map[string]struct{})
	addNode := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		s.Nodes = append(s.Nodes, core.Node{ID: id, Label: id})
	}

	line := -1
	err := eachLine(r, func(text string, ok bool) {
		fields := strings.Fields(text)
		if ok && len(fields) == 0 {
			return
		}
		line++
		if len(fields) < 2 {
			return
		}

		w := 1.0
		if !o.Weighted {
			w = 0
		}
		if len(fields) >= 3 {
			v, ok := parseNumber(fields[2])
			if !ok {
				return
			}
			w = v
		}

		addNode(fields[0])
		addNode(fields[1])
		s.Edges = append(s.Edges, core.Edge{
			ID:       "e-" + strconv.Itoa(line),
			From:     fields[0],
			To:       fields[1],
			Weight:   w,
			Directed: o.Directed,
		})
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("converters: read edge list: %w", err)
	}

	place(s.Nodes, o)
	return s, nil
}

// WriteEdgeList writes one "source target weight" line per edge.
func WriteEdgeList(w io.Writer, s core.Snapshot) error {
	bw := bufio.NewWriter(w)
	for _, e := range s.Edges {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, formatNumber(e.Weight)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
