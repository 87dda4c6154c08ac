package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstudio/converters"
	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/svg"
)

func importCmd(a *app) *cobra.Command {
	var (
		format     string
		out        string
		outFormat  string
		indexBase  int
		directed   bool
		unweighted bool
		layout     string
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert an edge list or adjacency matrix into a graph document",
		Example: `  graphstudio import roads.txt --directed -o roads.json
  graphstudio import adj.txt --format matrix --index-base 0 --layout grid -o adj.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := converters.FormatEdgeList
			if format != "" {
				f, err := converters.ParseFormat(format)
				if err != nil {
					return err
				}
				in = f
			}
			if indexBase != 0 && indexBase != 1 {
				return fmt.Errorf("--index-base must be 0 or 1, got %d", indexBase)
			}
			l, err := converters.ParseLayout(layout)
			if err != nil {
				return err
			}

			src, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			g, err := converters.Decode(src, in,
				converters.WithDirected(directed),
				converters.WithWeighted(!unweighted),
				converters.WithIndexBase(indexBase),
				converters.WithLayout(l),
				converters.WithSeed(seed),
			)
			if err != nil {
				return err
			}

			dst, err := documentFormat(out, outFormat, converters.FormatJSON)
			if err != nil {
				return err
			}
			if err := writeGraph(cmd, out, g, dst, a); err != nil {
				return err
			}
			if out != "" && out != "-" {
				good.Fprintf(cmd.ErrOrStderr(), "imported %d nodes, %d edges into %s\n", len(g.Nodes), len(g.Edges), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format: edge-list or matrix (default edge-list)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file; format from extension (default stdout)")
	cmd.Flags().StringVar(&outFormat, "to", "", "output format when writing to stdout: json or yaml")
	cmd.Flags().IntVar(&indexBase, "index-base", 1, "id of the first matrix row, 0 or 1")
	cmd.Flags().BoolVar(&directed, "directed", false, "import as a directed graph")
	cmd.Flags().BoolVar(&unweighted, "unweighted", false, "edge-list lines without a weight get 0 instead of 1")
	cmd.Flags().StringVar(&layout, "layout", string(converters.LayoutCircle), "node placement: circle, grid or random")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for --layout random")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export <graph>",
		Short: "Write a graph document as svg, edge-list, matrix, json or yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := converters.Load(args[0])
			if err != nil {
				return err
			}
			f, err := exportFormat(format, out)
			if err != nil {
				return err
			}
			return writeGraph(cmd, out, g, f, a)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg, edge-list, matrix, json or yaml (default from --output extension)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

// formatSVG extends converters.Format for export only.
const formatSVG converters.Format = "svg"

func exportFormat(name, out string) (converters.Format, error) {
	if name == "" {
		if out == "" || out == "-" {
			return converters.FormatJSON, nil
		}
		name = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	if strings.EqualFold(name, string(formatSVG)) {
		return formatSVG, nil
	}
	return converters.ParseFormat(name)
}

// documentFormat picks the format of a written document: the --to flag, then
// the output extension, then fallback.
func documentFormat(out, to string, fallback converters.Format) (converters.Format, error) {
	if to != "" {
		return converters.ParseFormat(to)
	}
	if out == "" || out == "-" {
		return fallback, nil
	}
	return converters.FormatFromPath(out)
}

func writeGraph(cmd *cobra.Command, path string, g core.Snapshot, f converters.Format, a *app) (err error) {
	w, closeFn, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); err == nil {
			err = cerr
		}
	}()

	if f == formatSVG {
		return svg.Render(w, g, svg.WithGeometry(a.geometry()...))
	}
	return converters.Encode(w, g, f)
}
