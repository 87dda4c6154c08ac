package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/algorithms"
	"github.com/katalvlaran/graphstudio/builder"
	"github.com/katalvlaran/graphstudio/converters"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/server"
)

// execute runs the CLI with an isolated config directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile creates name under a temp dir and returns its path.
func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// triangleJSON imports a weighted triangle and saves it as JSON.
func triangleJSON(t *testing.T) string {
	t.Helper()
	g, err := converters.ParseEdgeList(strings.NewReader("A B 1\nB C 2\nA C 5\n"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "triangle.json")
	require.NoError(t, converters.Save(path, g))
	return path
}

func TestAlgorithmsCommand(t *testing.T) {
	out, _, err := execute(t, "algorithms")
	require.NoError(t, err)
	for _, id := range runner.Names() {
		assert.Contains(t, out, id)
	}
}

func TestImportEdgeListToStdout(t *testing.T) {
	in := writeFile(t, "roads.txt", "A B 3\nB C\n")
	out, _, err := execute(t, "import", in, "--directed")
	require.NoError(t, err)

	g, err := converters.DecodeJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, g.Directed)
	assert.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, 3.0, g.Edges[0].Weight)
	assert.Equal(t, 1.0, g.Edges[1].Weight)
}

func TestImportMatrixToYAMLFile(t *testing.T) {
	in := writeFile(t, "adj.txt", "0 4\n4 0\n")
	dst := filepath.Join(t.TempDir(), "adj.yaml")
	_, stderr, err := execute(t, "import", in, "--format", "matrix", "--index-base", "0", "--layout", "grid", "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, stderr, "imported 2 nodes, 1 edges")

	g, err := converters.Load(dst)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 4.0, g.Edges[0].Weight)
}

func TestImportRejectsBadFlags(t *testing.T) {
	in := writeFile(t, "g.txt", "A B\n")

	_, _, err := execute(t, "import", in, "--index-base", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "import", in, "--layout", "spiral")
	assert.ErrorIs(t, err, converters.ErrUnknownLayout)
}

func TestExport(t *testing.T) {
	path := triangleJSON(t)

	svgOut, _, err := execute(t, "export", path, "--format", "svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svgOut), "<svg"), svgOut)

	edges, _, err := execute(t, "export", path, "-f", "edge-list")
	require.NoError(t, err)
	assert.Contains(t, edges, "A B 1")

	dst := filepath.Join(t.TempDir(), "out.svg")
	_, _, err = execute(t, "export", path, "-o", dst)
	require.NoError(t, err)
	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "</svg>")

	_, _, err = execute(t, "export", path, "-f", "png")
	assert.ErrorIs(t, err, converters.ErrUnknownFormat)
}

func TestRunPrintsSteps(t *testing.T) {
	out, _, err := execute(t, "run", triangleJSON(t), "-a", "bfs", "--start", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs: ")
	assert.Contains(t, out, "[1/")
	assert.Contains(t, out, "Start BFS from node A.")
	assert.Contains(t, out, "BFS complete.")
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", triangleJSON(t), "-a", "kruskal", "--json")
	require.NoError(t, err)

	var resp runner.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "kruskal", resp.Name)
	assert.Equal(t, "Kruskal complete. Minimum spanning tree weight: 3.", resp.Steps[len(resp.Steps)-1].Description)
}

func TestRunWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	out, _, err := execute(t, "run", triangleJSON(t), "-a", "kruskal", "--svg-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal: 6 steps")

	files, err := filepath.Glob(filepath.Join(dir, "frame_*.svg"))
	require.NoError(t, err)
	assert.Len(t, files, 6)
}

func TestRunErrors(t *testing.T) {
	path := triangleJSON(t)

	_, _, err := execute(t, "run", path, "-a", "floyd")
	assert.ErrorIs(t, err, runner.ErrUnsupportedAlgorithm)

	_, _, err = execute(t, "run", path, "-a", "dijkstra", "--source", "Z")
	assert.ErrorIs(t, err, algorithms.ErrPrecondition)

	_, _, err = execute(t, "run", path)
	assert.Error(t, err, "--algo is required")
}

func TestRunRemote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(server.New(algorithms.NewLocal(nil)).Handler())
	defer srv.Close()

	out, _, err := execute(t, "run", triangleJSON(t), "-a", "prim", "--remote", "--base-url", srv.URL+"/api")
	require.NoError(t, err)
	assert.Contains(t, out, "Prim complete. Minimum spanning tree weight: 3.")

	_, _, err = execute(t, "run", triangleJSON(t), "-a", "dijkstra", "--source", "Z", "--remote", "--base-url", srv.URL+"/api")
	var se *runner.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 422, se.Code)

	list, _, err := execute(t, "algorithms", "--remote", "--base-url", srv.URL+"/api")
	require.NoError(t, err)
	assert.Contains(t, list, "hierholzer")
}

func TestPlayReplaysEveryStep(t *testing.T) {
	out, _, err := execute(t, "play", triangleJSON(t), "-a", "kruskal", "--speed", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal: 6 steps every 1ms")
	for i := 1; i <= 6; i++ {
		assert.Contains(t, out, "["+string(rune('0'+i))+"/6]")
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "done"), out)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gs", "config.toml")

	out, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	out, _, err = execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	t.Setenv("GRAPHSTUDIO_SERVER_ADDR", ":7070")
	out, _, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `addr = ":7070"`)
	assert.Contains(t, out, `playback_speed = "800ms"`)
}

func TestBadConfigFails(t *testing.T) {
	path := writeFile(t, "config.toml", "[log]\nlevel = \"loud\"\n")
	_, _, err := execute(t, "--config", path, "algorithms")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "generate", "wheel", "-n", "5")
	require.NoError(t, err)
	g, err := converters.DecodeJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Edges, 8)

	dst := filepath.Join(t.TempDir(), "grid.yaml")
	_, stderr, err := execute(t, "generate", "grid", "--rows", "2", "--cols", "3", "--weights", "1,9", "--seed", "4", "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated 6 nodes, 7 edges")
	g, err = converters.Load(dst)
	require.NoError(t, err)
	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}

	svgOut, _, err := execute(t, "generate", "random", "-n", "6", "--directed", "-f", "svg")
	require.NoError(t, err)
	assert.Contains(t, svgOut, "</svg>")

	// A generated graph runs straight through the algorithms.
	path := filepath.Join(t.TempDir(), "k4.json")
	_, _, err = execute(t, "generate", "complete", "-n", "4", "-o", path)
	require.NoError(t, err)
	out, _, err = execute(t, "run", path, "-a", "prim", "--start", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Prim complete. Minimum spanning tree weight: 3.")
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := execute(t, "generate", "hypercube")
	assert.Error(t, err)

	_, _, err = execute(t, "generate", "cycle", "-n", "2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = execute(t, "generate", "random", "--p", "2")
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, _, err = execute(t, "generate", "path", "--weights", "1,2,3")
	assert.Error(t, err)
}
