// Package scan locates the header row of a table by scoring candidate rows
// against a set of column kinds and stopping at the first convincing one.
package scan

import (
	"context"
	"errors"
	"iter"
	"slices"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_header_similarity/internal/core/assessment"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// Default configuration values.
const (
	DefaultThreshold  = 0.7
	DefaultMinMatches = 1
	DefaultMaxRows    = 25
)

// ErrNoHeaderRow is returned when no scanned row clears the configured bar.
var ErrNoHeaderRow = errors.New("no header row found")

// Match is the best header position found for one kind.
type Match struct {
	Kind       int
	Position   int
	Similarity float64
}

// Result describes the detected header row.
type Result struct {
	// Row is the zero-based index of the header row among the scanned rows.
	Row int
	// Matrix holds the row's assessments, indexed [position][kind].
	Matrix assessment.Matrix
	// Matches lists, per kind at or above the threshold, its best position.
	Matches []Match
	// Scanned is the number of rows pulled from the source.
	Scanned int
}

// Option defines a functional option for configuring the scanner.
type Option func(*config)

type config struct {
	Threshold  float64
	MinMatches int
	MaxRows    int
	Logger     ports.Logger
}

// WithThreshold sets the similarity a kind must reach to count as matched.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithMinMatches sets how many kinds must match for a row to be accepted.
func WithMinMatches(n int) Option {
	return func(cfg *config) {
		cfg.MinMatches = n
	}
}

// WithMaxRows caps how many rows are scanned. Zero means no cap.
func WithMaxRows(n int) Option {
	return func(cfg *config) {
		cfg.MaxRows = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// Validate checks if the configuration is valid.
func (c config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.MinMatches < 1 {
		return errors.New("minMatches must be at least 1")
	}
	if c.MaxRows < 0 {
		return errors.New("maxRows must not be negative")
	}
	return nil
}

// Scanner finds header rows for a fixed set of kinds.
type Scanner struct {
	kinds  []ports.ColumnKind
	config config
}

// New creates a Scanner over kinds with the provided functional options.
// Without WithLogger nothing is logged.
func New[K ports.ColumnKind](kinds []K, opts ...Option) (*Scanner, error) {
	cfg := config{
		Threshold:  DefaultThreshold,
		MinMatches: DefaultMinMatches,
		MaxRows:    DefaultMaxRows,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}

	generic := make([]ports.ColumnKind, len(kinds))
	for i, k := range kinds {
		generic[i] = k
	}

	return &Scanner{kinds: generic, config: cfg}, nil
}

// Threshold returns the configured acceptance threshold.
func (s *Scanner) Threshold() float64 {
	return s.config.Threshold
}

// Detect pulls rows one at a time and returns the first whose matches reach
// the configured minimum. Rows after the accepted one are never pulled.
func (s *Scanner) Detect(ctx context.Context, rows iter.Seq[[]string]) (Result, error) {
	s.config.Logger.Debug("Starting header row scan",
		"kinds", len(s.kinds),
		"threshold", s.config.Threshold,
		"max_rows", s.config.MaxRows,
	)

	scanned := 0
	for i, matrix := range assessment.HeaderRows(s.kinds, rows) {
		scanned++
		if err := ctx.Err(); err != nil {
			s.config.Logger.Error("Header row scan cancelled", "error", err, "scanned", scanned)
			return Result{Scanned: scanned}, err
		}

		matches := BestMatches(matrix, s.config.Threshold)
		s.config.Logger.Debug("Row assessed", "row", i, "matches", len(matches))

		if len(matches) >= s.config.MinMatches {
			s.config.Logger.Info("Header row detected",
				"row", i,
				"matches", len(matches),
				"scanned", scanned,
			)
			return Result{Row: i, Matrix: matrix, Matches: matches, Scanned: scanned}, nil
		}

		if s.config.MaxRows > 0 && scanned >= s.config.MaxRows {
			break
		}
	}

	s.config.Logger.Warn("No header row found", "scanned", scanned)
	return Result{Row: -1, Scanned: scanned}, ErrNoHeaderRow
}

// DetectRows is Detect over an in-memory table.
func (s *Scanner) DetectRows(ctx context.Context, rows [][]string) (Result, error) {
	return s.Detect(ctx, slices.Values(rows))
}

// BestMatches returns, for every kind whose best similarity in matrix is at
// least threshold, the position holding that best similarity. Ties keep the
// leftmost position. Matches are ordered by kind. Rows shorter than the
// widest row are skipped for the kinds they lack.
func BestMatches(matrix assessment.Matrix, threshold float64) []Match {
	width := 0
	for _, row := range matrix {
		width = max(width, len(row))
	}

	var matches []Match
	for k := 0; k < width; k++ {
		best := Match{Kind: k, Position: -1}
		for _, row := range matrix {
			if k >= len(row) {
				continue
			}
			if a := row[k]; a.Similarity > best.Similarity || best.Position < 0 {
				best.Position = a.Position
				best.Similarity = a.Similarity
			}
		}
		if best.Position >= 0 && best.Similarity >= threshold {
			matches = append(matches, best)
		}
	}
	return matches
}
