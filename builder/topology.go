package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphstudio/core"
)

// Method tags and minimum sizes.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodBipartite    = "CompleteBipartite"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minCycleNodes = 3
	minPathNodes  = 2
	minStarNodes  = 2
	minWheelNodes = 4
)

// ring places n nodes (ids idFn(offset..offset+n-1)) on the configured
// circle, starting at the top and going clockwise.
func ring(g *core.Graph, cfg config, method string, offset, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		ids[i] = cfg.idFn(offset + i)
		x := cfg.cx + cfg.radius*math.Cos(a)
		y := cfg.cy + cfg.radius*math.Sin(a)
		if err := addNode(g, method, ids[i], round(x), round(y)); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func round(v float64) float64 { return math.Round(v*100) / 100 }

// Cycle builds C_n (n ≥ 3) on a circle. Edges i→i+1, then n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := ring(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := range ids {
			if err := addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Path builds P_n (n ≥ 2) on a horizontal line. Edges i→i+1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		x0 := cfg.cx - cfg.spacing*float64(n-1)/2
		for i := 0; i < n; i++ {
			if err := addNode(g, methodPath, cfg.idFn(i), round(x0+cfg.spacing*float64(i)), cfg.cy); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a centre idFn(0) joined to n-1 leaves on a circle (n ≥ 2).
// Edges centre→leaf in leaf order.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := cfg.idFn(0)
		if err := addNode(g, methodStar, center, cfg.cx, cfg.cy); err != nil {
			return err
		}
		leaves, err := ring(g, cfg, methodStar, 1, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addEdge(g, cfg, methodStar, center, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds W_n: a rim cycle of n-1 nodes plus centre idFn(0) (n ≥ 4).
// Rim edges come first, then spokes centre→rim.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		center := cfg.idFn(0)
		if err := addNode(g, methodWheel, center, cfg.cx, cfg.cy); err != nil {
			return err
		}
		rim, err := ring(g, cfg, methodWheel, 1, n-1)
		if err != nil {
			return err
		}
		for i := range rim {
			if err := addEdge(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, r := range rim {
			if err := addEdge(g, cfg, methodWheel, center, r); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n (n ≥ 1) on a circle. Edges i→j for i < j in
// lexicographic order; directed graphs also get j→i after each pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids, err := ring(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with ids "L1".."Ln1" in a left column
// and "R1".."Rn2" in a right column. Edges left→right, row-major.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w", methodBipartite, n1, n2, ErrTooFewVertices)
		}
		column := func(prefix string, n int, x float64) ([]string, error) {
			ids := make([]string, n)
			y0 := cfg.cy - cfg.spacing*float64(n-1)/2
			for i := range ids {
				ids[i] = fmt.Sprintf("%s%d", prefix, i+1)
				if err := addNode(g, methodBipartite, ids[i], x, round(y0+cfg.spacing*float64(i))); err != nil {
					return nil, err
				}
			}
			return ids, nil
		}
		left, err := column(cfg.leftPrefix, n1, cfg.cx-cfg.spacing)
		if err != nil {
			return err
		}
		right, err := column(cfg.rightPrefix, n2, cfg.cx+cfg.spacing)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, methodBipartite, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighbour lattice, ids row-major through idFn.
// For each cell the right edge is emitted before the down edge; directed
// graphs get the reverse arc right after each.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		x0 := cfg.cx - cfg.spacing*float64(cols-1)/2
		y0 := cfg.cy - cfg.spacing*float64(rows-1)/2
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addNode(g, methodGrid, id(r, c), round(x0+cfg.spacing*float64(c)), round(y0+cfg.spacing*float64(r))); err != nil {
					return err
				}
			}
		}

		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(g, cfg, methodGrid, v, u)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph on a circle: every
// unordered pair (ordered when directed) is kept with probability p. Pairs
// are visited i-major. p strictly between 0 and 1 needs WithSeed/WithRand.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := ring(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if keep() {
					if err := addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
