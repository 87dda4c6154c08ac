package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/algorithms"
	"github.com/katalvlaran/graphstudio/converters"
	"github.com/katalvlaran/graphstudio/editor"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
	"github.com/katalvlaran/graphstudio/svg"
)

// runFlags are shared by run and play.
type runFlags struct {
	algo    string
	source  string
	target  string
	start   string
	remote  bool
	baseURL string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "", "algorithm id (see `graphstudio algorithms`)")
	cmd.Flags().StringVar(&f.source, "source", "", "source node (dijkstra, bellman_ford, ford_fulkerson)")
	cmd.Flags().StringVar(&f.target, "target", "", "target or sink node")
	cmd.Flags().StringVar(&f.start, "start", "", "start node (bfs, dfs, prim, hierholzer)")
	cmd.Flags().BoolVar(&f.remote, "remote", false, "run on the algorithm service instead of in-process")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "service API root (default from config)")
	_ = cmd.MarkFlagRequired("algo")
}

func (f *runFlags) request() (runner.Request, error) {
	alg, err := runner.ParseAlgorithm(f.algo)
	if err != nil {
		return runner.Request{}, fmt.Errorf("%w (supported: %v)", err, runner.Names())
	}
	return runner.Request{Algorithm: alg, Source: f.source, Target: f.target, StartNode: f.start}, nil
}

// runInEditor loads the graph at path into a fresh editor and runs the
// requested algorithm through it.
func (a *app) runInEditor(cmd *cobra.Command, path string, f *runFlags, extra ...editor.Option) (*editor.Editor, error) {
	req, err := f.request()
	if err != nil {
		return nil, err
	}
	g, err := converters.Load(path)
	if err != nil {
		return nil, err
	}

	var r runner.Runner = algorithms.NewLocal(a.logger)
	if f.remote {
		r = a.client(f.baseURL)
	}
	e := a.editor(r, extra...)
	e.LoadGraph(g)
	if err := e.RunAlgorithm(cmd.Context(), req); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func runCmd(a *app) *cobra.Command {
	var (
		flags  runFlags
		asJSON bool
		svgDir string
	)
	cmd := &cobra.Command{
		Use:   "run <graph>",
		Short: "Run an algorithm and print its steps",
		Example: `  graphstudio run city.json -a dijkstra --source A --target F
  graphstudio run net.yaml -a ford_fulkerson --source s --target t --svg-dir frames/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.runInEditor(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			defer e.Close()

			steps := e.Player().Steps()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(runner.Response{Name: e.LastRun(), Steps: steps})
			}

			brand.Fprintf(out, "%s: %d steps\n", e.LastRun(), len(steps))
			for i, s := range steps {
				printStep(out, i, len(steps), s)
			}

			if svgDir != "" {
				return writeFrames(e, svgDir, a)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw response")
	cmd.Flags().StringVar(&svgDir, "svg-dir", "", "also write one SVG per step into this directory")
	return cmd
}

// printStep writes "[i/n] description" followed by the highlighted ids.
func printStep(w io.Writer, i, n int, s step.Step) {
	info.Fprintf(w, "[%d/%d] ", i+1, n)
	fmt.Fprintln(w, s.Description)
	if len(s.HighlightNodes) == 0 && len(s.HighlightEdges) == 0 {
		return
	}
	subtle.Fprintf(w, "       nodes %s  edges %s\n", colorList(s.HighlightNodes), colorList(s.HighlightEdges))
}

func colorList(m map[string]step.Color) string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return "-"
	}
	converters.SortNodeIDs(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id + "=" + paletteName(m[id])
	}
	return strings.Join(parts, " ")
}

func paletteName(c step.Color) string {
	switch c {
	case step.ColorProcessed:
		return "done"
	case step.ColorActive:
		return "active"
	case step.ColorConsidering:
		return "considering"
	case step.ColorRejected:
		return "rejected"
	}
	return string(c)
}

// writeFrames renders every loaded step as frame_NNN.svg.
func writeFrames(e *editor.Editor, dir string, a *app) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	p := e.Player()
	for i := 0; i < p.Len(); i++ {
		p.SetStep(i)
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.svg", i+1))
		if err := writeSVG(path, e.Frame(), a); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(path string, f editor.Frame, a *app) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return svg.RenderFrame(file, f, svg.WithGeometry(a.geometry()...))
}
