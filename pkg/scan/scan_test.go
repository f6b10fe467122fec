package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_header_similarity/internal/core/assessment"
	"github.com/baditaflorin/go_header_similarity/pkg/catalog"
)

func newScanner(t *testing.T, opts ...Option) (*Scanner, *catalog.Catalog) {
	t.Helper()
	c := catalog.Default()
	s, err := New(c.Kinds, opts...)
	require.NoError(t, err)
	return s, c
}

func TestDetectFindsHeaderBelowPreamble(t *testing.T) {
	s, c := newScanner(t)

	rows := [][]string{
		{"", "", "", ""},
		{"", "", "MEMBER NAME", "SSN"},
		{"", "", "Smith, John", "123-45-6789"},
	}

	res, err := s.DetectRows(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Row)
	assert.Equal(t, 2, res.Scanned)

	byKind := map[string]Match{}
	for _, m := range res.Matches {
		byKind[c.Kinds[m.Kind].Name] = m
	}
	require.Contains(t, byKind, "subscriber_name")
	assert.Equal(t, 2, byKind["subscriber_name"].Position)
	assert.Greater(t, byKind["subscriber_name"].Similarity, DefaultThreshold)
	require.Contains(t, byKind, "ssn")
	assert.Equal(t, 3, byKind["ssn"].Position)
}

func TestEmptyRowScoresZero(t *testing.T) {
	s, c := newScanner(t)

	matrix := assessment.ForHeaders(c.Kinds, []string{"", "", ""})
	for _, row := range matrix {
		for _, a := range row {
			assert.InDelta(t, 0.0, a.Similarity, 1e-9)
		}
	}
	assert.Empty(t, BestMatches(matrix, s.Threshold()))
}

func TestDetectStopsPulling(t *testing.T) {
	s, _ := newScanner(t)

	pulled := 0
	rows := func(yield func([]string) bool) {
		table := [][]string{{"Report"}, {"SSN", "Premium"}, {"123-45-6789", "$10"}, {"987-65-4321", "$12"}}
		for _, row := range table {
			pulled++
			if !yield(row) {
				return
			}
		}
	}

	res, err := s.Detect(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Row)
	assert.Equal(t, 2, pulled)
}

func TestDetectMinMatches(t *testing.T) {
	s, _ := newScanner(t, WithMinMatches(3))

	rows := [][]string{
		{"SSN", "", ""},
		{"Member ID No.", "Subscriber Name", "Premium Amount"},
	}
	res, err := s.DetectRows(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Row)
	assert.GreaterOrEqual(t, len(res.Matches), 3)
}

func TestDetectNoHeader(t *testing.T) {
	s, _ := newScanner(t, WithMaxRows(2))

	rows := [][]string{{"", ""}, {"", ""}, {"SSN", "Premium"}}
	res, err := s.DetectRows(context.Background(), rows)
	assert.ErrorIs(t, err, ErrNoHeaderRow)
	assert.Equal(t, -1, res.Row)
	assert.Equal(t, 2, res.Scanned)
}

func TestDetectCancelled(t *testing.T) {
	s, _ := newScanner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.DetectRows(ctx, [][]string{{"SSN"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewValidates(t *testing.T) {
	kinds := catalog.Default().Kinds

	_, err := New(kinds, WithThreshold(1.5))
	assert.Error(t, err)
	_, err = New(kinds, WithMinMatches(0))
	assert.Error(t, err)
	_, err = New(kinds, WithMaxRows(-1))
	assert.Error(t, err)
}

func TestBestMatches(t *testing.T) {
	matrix := assessment.Matrix{
		{{Similarity: 0.9, Position: 0}, {Similarity: 0.2, Position: 0}},
		{{Similarity: 0.9, Position: 1}, {Similarity: 0.6, Position: 1}},
	}

	assert.Equal(t, []Match{{Kind: 0, Position: 0, Similarity: 0.9}}, BestMatches(matrix, 0.7))
	assert.Equal(t, []Match{
		{Kind: 0, Position: 0, Similarity: 0.9},
		{Kind: 1, Position: 1, Similarity: 0.6},
	}, BestMatches(matrix, 0.5))
	assert.Nil(t, BestMatches(nil, 0.5))
	assert.Nil(t, BestMatches(assessment.Matrix{{}}, 0.5))
}

func TestBestMatchesRaggedMatrix(t *testing.T) {
	matrix := assessment.Matrix{
		{{Similarity: 0.3, Position: 0}},
		{{Similarity: 0.4, Position: 1}, {Similarity: 0.8, Position: 1}},
		{},
	}

	var matches []Match
	require.NotPanics(t, func() { matches = BestMatches(matrix, 0.35) })
	assert.Equal(t, []Match{
		{Kind: 0, Position: 1, Similarity: 0.4},
		{Kind: 1, Position: 1, Similarity: 0.8},
	}, matches)
}
