package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/algorithms"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const triangle = `{
	"algorithm": "BFS",
	"graph": {
		"nodes": [{"id":"A","x":0,"y":0},{"id":"B","x":100,"y":0},{"id":"C","x":50,"y":80}],
		"edges": [
			{"id":"e1","source":"A","target":"B","weight":1},
			{"id":"e2","source":"B","target":"C","weight":2},
			{"id":"e3","source":"A","target":"C","weight":5}
		],
		"isDirected": false
	},
	"start_node": "A"
}`

func do(t *testing.T, h http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorResponse struct {
	Error     string   `json:"error"`
	Supported []string `json:"supported_algorithms"`
}

func TestHealth(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[runner.Health](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, runner.Names(), body.Supported)
}

func TestAlgorithms(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodGet, "/api/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Algorithms []runner.Info `json:"algorithms"`
	}](t, w)
	assert.Equal(t, runner.Catalog(), body.Algorithms)
}

func TestRun_OK(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodPost, "/api/run", triangle)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[runner.Response](t, w)
	assert.Equal(t, "bfs", resp.Name)
	require.NotEmpty(t, resp.Steps)
	assert.Equal(t, "Start BFS from node A.", resp.Steps[0].Description)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRun_EmptyGraphIsNotAnError(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodPost, "/api/run", `{"algorithm":"dijkstra","graph":{"nodes":[],"edges":[]}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[runner.Response](t, w).Steps, 1)
}

func TestRun_BadRequests(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()

	cases := []struct {
		name, body, wantErr string
		wantSupported      bool
	}{
		{"malformed", `{"algorithm":`, "invalid JSON", false},
		{"missing graph", `{"algorithm":"bfs"}`, "missing graph", false},
		{"missing graph wins", `{"algorithm":"floyd"}`, "missing graph", false},
		{"unknown algorithm", `{"algorithm":"floyd","graph":{}}`, `"floyd" is not supported`, true},
		{"no algorithm", `{"graph":{}}`, "is not supported", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/run", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decode[errorResponse](t, w)
			assert.Contains(t, body.Error, tc.wantErr)
			if tc.wantSupported {
				assert.Equal(t, runner.Names(), body.Supported)
			} else {
				assert.Empty(t, body.Supported)
			}
		})
	}
}

func TestRun_PreconditionIs422(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodPost, "/api/run",
		`{"algorithm":"dijkstra","graph":{"nodes":[{"id":"A"}],"edges":[]},"source":"Z"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode[errorResponse](t, w).Error, "Z")
}

func TestRun_RunnerErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"internal", errors.New("boom"), http.StatusInternalServerError},
		{"unsupported", runner.ErrUnsupportedAlgorithm, http.StatusBadRequest},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := runner.Func(func(context.Context, runner.Request) (runner.Response, error) {
				return runner.Response{}, tc.err
			})
			w := do(t, server.New(r).Handler(), http.MethodPost, "/api/run", triangle)
			assert.Equal(t, tc.code, w.Code)
			assert.NotEmpty(t, decode[errorResponse](t, w).Error)
		})
	}
}

func TestRun_TimeoutReachesRunner(t *testing.T) {
	r := runner.Func(func(ctx context.Context, _ runner.Request) (runner.Response, error) {
		<-ctx.Done()
		return runner.Response{}, ctx.Err()
	})
	h := server.New(r, server.WithRequestTimeout(20*time.Millisecond)).Handler()
	w := do(t, h, http.MethodPost, "/api/run", triangle)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRun_RequestFieldsForwarded(t *testing.T) {
	var got runner.Request
	r := runner.Func(func(_ context.Context, req runner.Request) (runner.Response, error) {
		got = req
		return runner.Response{Name: string(req.Algorithm)}, nil
	})
	body := `{"algorithm":"Ford-Fulkerson","graph":{"nodes":[{"id":"s"},{"id":"t"}],"edges":[],"isDirected":true},"source":"s","target":"t","start_node":"s"}`
	w := do(t, server.New(r).Handler(), http.MethodPost, "/api/run", body)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, runner.FordFulkerson, got.Algorithm)
	assert.True(t, got.Graph.Directed)
	assert.Len(t, got.Graph.Nodes, 2)
	assert.Equal(t, "s", got.Source)
	assert.Equal(t, "t", got.Target)
	assert.Equal(t, "s", got.StartNode)
}

func TestRateLimit(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil), server.WithRateLimit(0.001, 1)).Handler()

	first := do(t, h, http.MethodPost, "/api/run", triangle)
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(t, h, http.MethodPost, "/api/run", triangle)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	// other routes are not limited
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/health", "").Code)
}

func TestMaxBodyBytes(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil), server.WithMaxBodyBytes(16)).Handler()
	w := do(t, h, http.MethodPost, "/api/run", triangle)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	w := do(t, h, http.MethodGet, "/api/health", "", "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil), server.WithAllowedOrigin("http://localhost:3000")).Handler()

	w := do(t, h, http.MethodOptions, "/api/run", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestMetricsEndpoint(t *testing.T) {
	h := server.New(algorithms.NewLocal(nil)).Handler()
	do(t, h, http.MethodPost, "/api/run", triangle)

	w := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "graphstudio_http_requests_total")
	assert.Contains(t, w.Body.String(), "graphstudio_algorithm_runs_total")
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	s := server.New(algorithms.NewLocal(nil))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
