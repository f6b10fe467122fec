package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_header_similarity/internal/core/assessment"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
	"github.com/baditaflorin/go_header_similarity/pkg/catalog"
	"github.com/baditaflorin/go_header_similarity/pkg/scan"
)

const (
	requestIDHeader = "X-Request-ID"
	requestTimeout  = 30 * time.Second
)

// HeadersRequest asks for the assessment of one candidate header row.
type HeadersRequest struct {
	Headers   []string `json:"headers"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// ValuesRequest asks for the assessment of sample cell values.
type ValuesRequest struct {
	Values    []string `json:"values"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// DetectRequest asks for the header row among the given rows.
type DetectRequest struct {
	Rows       [][]string `json:"rows"`
	Threshold  *float64   `json:"threshold,omitempty"`
	MinMatches int        `json:"min_matches,omitempty"`
	MaxRows    int        `json:"max_rows,omitempty"`
}

// Cell is one assessment in a response matrix.
type Cell struct {
	Similarity float64 `json:"similarity"`
	Position   int     `json:"position"`
}

// MatchResponse is the best position found for one kind.
type MatchResponse struct {
	Kind       string  `json:"kind"`
	Position   int     `json:"position"`
	Similarity float64 `json:"similarity"`
}

// MatrixResponse carries a full assessment matrix, indexed [position][kind].
type MatrixResponse struct {
	Kinds       []string        `json:"kinds"`
	Assessments [][]Cell        `json:"assessments"`
	Matches     []MatchResponse `json:"matches"`
	Threshold   float64         `json:"threshold"`
}

// DetectResponse reports the detected header row.
type DetectResponse struct {
	Found   bool            `json:"found"`
	Row     int             `json:"row"`
	Scanned int             `json:"scanned"`
	Matches []MatchResponse `json:"matches,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type server struct {
	catalog *catalog.Catalog
	logger  ports.Logger
	workers int
}

func newServer(cat *catalog.Catalog, logger ports.Logger, workers int) *server {
	return &server{catalog: cat, logger: logger, workers: workers}
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.SetUserValue(requestIDHeader, requestID)

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "HeaderSimilarityServer")
	ctx.Response.Header.Set(requestIDHeader, requestID)

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/kinds":
		s.handleKinds(ctx)
	case "/assess/headers":
		s.handleAssessHeaders(ctx)
	case "/assess/values":
		s.handleAssessValues(ctx)
	case "/detect":
		s.handleDetect(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	// Log request
	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"kinds":  len(s.catalog.Kinds),
	})
}

func (s *server) handleKinds(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"kinds": s.catalog.Names(),
	})
}

func (s *server) handleAssessHeaders(ctx *fasthttp.RequestCtx) {
	var req HeadersRequest
	if !s.decodePost(ctx, &req) {
		return
	}
	threshold, ok := s.threshold(ctx, req.Threshold)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	matrix, err := assessment.ForHeadersParallel(c, s.catalog.Kinds, req.Headers, s.workers)
	if err != nil {
		s.logger.Error("Header assessment failed", "error", err)
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		s.writeJSONError(ctx, "Assessment cancelled: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, s.matrixResponse(matrix, threshold))
}

func (s *server) handleAssessValues(ctx *fasthttp.RequestCtx) {
	var req ValuesRequest
	if !s.decodePost(ctx, &req) {
		return
	}
	threshold, ok := s.threshold(ctx, req.Threshold)
	if !ok {
		return
	}

	matrix := assessment.ForValues(s.catalog.Kinds, req.Values)

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, s.matrixResponse(matrix, threshold))
}

func (s *server) handleDetect(ctx *fasthttp.RequestCtx) {
	var req DetectRequest
	if !s.decodePost(ctx, &req) {
		return
	}

	var opts []scan.Option
	if req.Threshold != nil {
		opts = append(opts, scan.WithThreshold(*req.Threshold))
	}
	if req.MinMatches > 0 {
		opts = append(opts, scan.WithMinMatches(req.MinMatches))
	}
	if req.MaxRows > 0 {
		opts = append(opts, scan.WithMaxRows(req.MaxRows))
	}

	scanner, err := scan.New(s.catalog.Kinds, opts...)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := scanner.DetectRows(c, req.Rows)
	switch {
	case errors.Is(err, scan.ErrNoHeaderRow):
		ctx.SetStatusCode(fasthttp.StatusOK)
		s.writeJSONResponse(ctx, DetectResponse{Found: false, Row: -1, Scanned: result.Scanned})
	case err != nil:
		s.logger.Error("Header row detection failed", "error", err)
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		s.writeJSONError(ctx, "Detection cancelled: "+err.Error())
	default:
		ctx.SetStatusCode(fasthttp.StatusOK)
		s.writeJSONResponse(ctx, DetectResponse{
			Found:   true,
			Row:     result.Row,
			Scanned: result.Scanned,
			Matches: s.matchResponses(result.Matches),
		})
	}
}

// decodePost rejects non-POST requests and decodes the JSON body into dst.
func (s *server) decodePost(ctx *fasthttp.RequestCtx, dst interface{}) bool {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return false
	}

	if err := json.Unmarshal(ctx.PostBody(), dst); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (s *server) threshold(ctx *fasthttp.RequestCtx, requested *float64) (float64, bool) {
	if requested == nil {
		return scan.DefaultThreshold, true
	}
	if *requested < 0 || *requested > 1 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "threshold must be between 0 and 1")
		return 0, false
	}
	return *requested, true
}

func (s *server) matrixResponse(matrix assessment.Matrix, threshold float64) MatrixResponse {
	cells := make([][]Cell, len(matrix))
	for i, row := range matrix {
		cells[i] = make([]Cell, len(row))
		for k, a := range row {
			cells[i][k] = Cell{Similarity: a.Similarity, Position: a.Position}
		}
	}

	return MatrixResponse{
		Kinds:       s.catalog.Names(),
		Assessments: cells,
		Matches:     s.matchResponses(scan.BestMatches(matrix, threshold)),
		Threshold:   threshold,
	}
}

func (s *server) matchResponses(matches []scan.Match) []MatchResponse {
	out := make([]MatchResponse, len(matches))
	for i, m := range matches {
		out[i] = MatchResponse{
			Kind:       s.catalog.Kinds[m.Kind].Name,
			Position:   m.Position,
			Similarity: m.Similarity,
		}
	}
	return out
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	requestID, _ := ctx.UserValue(requestIDHeader).(string)
	response, err := json.Marshal(ErrorResponse{Error: message, RequestID: requestID})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
