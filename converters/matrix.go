// File: matrix.go
// Role: Adjacency-matrix text import and export.
// Determinism:
//   - Import ids are row index + IndexBase; edges follow row-major order.
//   - Export rows follow SortNodeIDs.

package converters

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
)

// ParseAdjacencyMatrix reads N non-blank rows as an N×N matrix.
//
// Rules:
//   - tokens that are not finite numbers read as 0;
//   - a row longer than 64 KiB reads as all zeros;
//   - short rows are padded with 0, long rows truncated to N;
//   - a nonzero cell (r, c) is an edge r→c with the cell as weight,
//     id "e-{r}-{c}"; the diagonal yields self-loops;
//   - for undirected imports the mirror cell (c, r), c < r, of an edge
//     already created from row c is not duplicated.
//
// Complexity: O(N²).
func ParseAdjacencyMatrix(r io.Reader, opts ...Option) (core.Snapshot, error) {
	o := gather(opts)

	var rows [][]string
	err := eachLine(r, func(text string, ok bool) {
		if !ok {
			rows = append(rows, nil)
			return
		}
		if f := strings.Fields(text); len(f) > 0 {
			rows = append(rows, f)
		}
	})
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("converters: read matrix: %w", err)
	}

	n := len(rows)
	cells := make([][]float64, n)
	for i, row := range rows {
		cells[i] = make([]float64, n)
		for j := 0; j < n && j < len(row); j++ {
			if v, ok := parseNumber(row[j]); ok {
				cells[i][j] = v
			}
		}
	}

	s := core.Snapshot{Directed: o.Directed, Nodes: make([]core.Node, n)}
	id := func(i int) string { return strconv.Itoa(i + o.IndexBase) }
	for i := range s.Nodes {
		s.Nodes[i] = core.Node{ID: id(i), Label: id(i)}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := cells[i][j]
			if v == 0 {
				continue
			}
			if !o.Directed && j < i && cells[j][i] != 0 {
				continue
			}
			s.Edges = append(s.Edges, core.Edge{
				ID:       "e-" + strconv.Itoa(i) + "-" + strconv.Itoa(j),
				From:     id(i),
				To:       id(j),
				Weight:   v,
				Directed: o.Directed,
			})
		}
	}

	place(s.Nodes, o)
	return s, nil
}

// WriteAdjacencyMatrix writes the graph as an N×N matrix, rows and columns
// in SortNodeIDs order. Undirected graphs are mirrored. Of several parallel
// edges the last one wins.
func WriteAdjacencyMatrix(w io.Writer, s core.Snapshot) error {
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = n.ID
	}
	SortNodeIDs(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	m := make([][]float64, len(ids))
	for i := range m {
		m[i] = make([]float64, len(ids))
	}
	for _, e := range s.Edges {
		u, okU := index[e.From]
		v, okV := index[e.To]
		if !okU || !okV {
			continue
		}
		m[u][v] = e.Weight
		if !s.Directed {
			m[v][u] = e.Weight
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range m {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = formatNumber(v)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SortNodeIDs orders ids numerically when every id is an integer and
// lexically otherwise.
func SortNodeIDs(ids []string) {
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			slices.Sort(ids)
			return
		}
		nums[id] = n
	}
	slices.SortStableFunc(ids, func(a, b string) int {
		return cmp.Or(cmp.Compare(nums[a], nums[b]), strings.Compare(a, b))
	})
}
