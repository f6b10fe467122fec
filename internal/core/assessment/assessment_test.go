package assessment

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_header_similarity/internal/core/assessor"
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
)

type dictKind struct {
	name   string
	header []string
	value  []string
}

func (k dictKind) AssessHeader(header string) float64 {
	return assessor.Default().WithDict(header, k.header)
}

func (k dictKind) AssessValue(value string) float64 {
	cfg := domain.DefaultNormalizationConfig()
	cfg.AlphaReduced = true
	return assessor.New(cfg, nil).WithDict(value, k.value)
}

var kinds = []dictKind{
	{name: "member_id", header: []string{"member id"}, value: []string{"0", "0a", "a0"}},
	{name: "subscriber_name", header: []string{"subscriber name", "first name", "last name", "member name"}, value: []string{"a", "a a", "a, a"}},
	{name: "ssn", header: []string{"ssn", "social security number"}, value: []string{"0-0-0"}},
}

const acceptance = 0.7

func TestForHeadersDimensions(t *testing.T) {
	headers := []string{"Member ID No.", "Subscriber Name", "Product", "SSN"}

	matrix := ForHeaders(kinds, headers)
	require.Len(t, matrix, len(headers))
	for i, row := range matrix {
		require.Len(t, row, len(kinds))
		for _, a := range row {
			assert.Equal(t, i, a.Position)
		}
	}

	assert.Equal(t, 1.0, matrix[1][1].Similarity)
	assert.Equal(t, 1.0, matrix[3][2].Similarity)
	assert.Greater(t, matrix[0][0].Similarity, acceptance)

	assert.Empty(t, ForHeaders(kinds, nil))
	for _, row := range ForHeaders([]dictKind{}, headers) {
		assert.Empty(t, row)
	}
}

func TestForHeadersDeterministic(t *testing.T) {
	headers := []string{"MEMBER NAME", "", "SSN", "MEMBER ID #"}
	assert.Equal(t, ForHeaders(kinds, headers), ForHeaders(kinds, headers))
}

func TestForValues(t *testing.T) {
	matrix := ForValues(kinds, []string{"Smith, John", "A123", "123-45-6789"})
	require.Len(t, matrix, 3)

	assert.Equal(t, 1.0, matrix[0][1].Similarity)
	assert.Equal(t, 1.0, matrix[1][0].Similarity)
	assert.Equal(t, 1.0, matrix[2][2].Similarity)
	assert.Equal(t, 2, matrix[2][2].Position)
}

func TestHeaderRowsFindsHeaderRow(t *testing.T) {
	rows := [][]string{
		{"", "", "", ""},
		{"Acme Insurance", "", "", ""},
		{"", "", "MEMBER NAME", "SSN"},
		{"", "", "Smith, John", "123-45-6789"},
	}

	found := -1
	for i, matrix := range HeaderRows(kinds, Rows(rows)) {
		if i == 0 {
			for _, row := range matrix {
				for _, a := range row {
					assert.Equal(t, 0.0, a.Similarity)
				}
			}
		}
		if matrix[2][1].Similarity > acceptance {
			found = i
			break
		}
	}
	assert.Equal(t, 2, found)
}

func TestHeaderRowsIsLazy(t *testing.T) {
	rows := [][]string{{"x"}, {"SSN"}, {"y"}, {"z"}}

	pulled := 0
	source := func(yield func([]string) bool) {
		for _, row := range rows {
			pulled++
			if !yield(row) {
				return
			}
		}
	}

	seq := HeaderRows(kinds, source)
	assert.Equal(t, 0, pulled)

	for i, matrix := range seq {
		if matrix[0][2].Similarity == 1.0 {
			assert.Equal(t, 1, i)
			break
		}
	}
	assert.Equal(t, 2, pulled)

	// A slice-backed source can be iterated again from the start.
	count := 0
	for range HeaderRows(kinds, Rows(rows)) {
		count++
	}
	assert.Equal(t, len(rows), count)
}

func TestForHeadersParallelMatchesSequential(t *testing.T) {
	headers := []string{
		"CLASS DESCRIPTION", "ID NO", "SSN", "SUBSCRIBER NAME", "MEMBER NAME",
		"MEMBER COUNT", "COVERAGE TYPE", "COVERAGE PERIOD", "MEMBER LEVEL AMOUNT",
	}

	want := ForHeaders(kinds, headers)
	for _, workers := range []int{0, 1, 3, 32} {
		got, err := ForHeadersParallel(context.Background(), kinds, headers, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d\n%s", workers, spew.Sdump(got))
	}
}

func TestForHeadersParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matrix, err := ForHeadersParallel(ctx, kinds, []string{"SSN", "MEMBER NAME"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, matrix)
}
