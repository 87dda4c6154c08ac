package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphstudio/algorithms"
	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/runner"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := runner.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
}

// runRequest is the wire form of runner.Request. Graph is a pointer so a
// missing document can be told apart from an empty one.
type runRequest struct {
	Algorithm string         `json:"algorithm" validate:"required,algorithm"`
	Graph     *core.Snapshot `json:"graph" validate:"required"`
	Source    string         `json:"source"`
	Target    string         `json:"target"`
	StartNode string         `json:"start_node"`
}

type errorBody struct {
	Error     string   `json:"error"`
	Supported []string `json:"supported_algorithms,omitempty"`
}

type healthBody struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Supported []string `json:"supported_algorithms"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthBody{
		Status:    "ok",
		Message:   "graphstudio algorithm service is running",
		Supported: runner.Names(),
	})
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": runner.Catalog()})
}

func (s *Server) handleRun(c *gin.Context) {
	var body runRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorBody{Error: "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid JSON: " + err.Error()})
		return
	}
	if eb, ok := checkRequest(&body); !ok {
		c.JSON(http.StatusBadRequest, eb)
		return
	}

	alg, _ := runner.ParseAlgorithm(body.Algorithm)
	req := runner.Request{
		Algorithm: alg,
		Graph:     *body.Graph,
		Source:    body.Source,
		Target:    body.Target,
		StartNode: body.StartNode,
	}

	ctx := c.Request.Context()
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("request_id", c.GetString(requestIDKey)),
		attribute.String("algorithm", string(alg)),
	)

	resp, err := s.runner.Run(ctx, req)
	if err != nil {
		s.fail(c, alg, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// checkRequest validates body; a missing graph is reported before an
// unknown algorithm.
func checkRequest(body *runRequest) (errorBody, bool) {
	err := validate.Struct(body)
	if err == nil {
		return errorBody{}, true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errorBody{Error: err.Error()}, false
	}
	for _, fe := range verrs {
		if fe.Field() == "Graph" {
			return errorBody{Error: "missing graph data"}, false
		}
	}
	return errorBody{
		Error:     fmt.Sprintf("algorithm %q is not supported", body.Algorithm),
		Supported: runner.Names(),
	}, false
}

func (s *Server) fail(c *gin.Context, alg runner.Algorithm, err error) {
	code := http.StatusInternalServerError
	body := errorBody{Error: err.Error()}
	switch {
	case errors.Is(err, algorithms.ErrPrecondition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, runner.ErrUnsupportedAlgorithm):
		code = http.StatusBadRequest
		body.Supported = runner.Names()
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
		body.Error = "algorithm run timed out"
	}

	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.LogAttrs(c.Request.Context(), level, "run failed",
		slog.String(requestIDKey, c.GetString(requestIDKey)),
		slog.String("algorithm", string(alg)),
		slog.Int("status", code),
		slog.String("error", err.Error()),
	)
	c.JSON(code, body)
}
