// Package assessment builds position-indexed score matrices by applying
// column kinds to header rows.
//
// A matrix is indexed [header position][kind position], both in input order.
package assessment

import (
	"iter"
	"slices"

	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
	"github.com/baditaflorin/go_header_similarity/internal/ports"
)

// Matrix holds one row of assessments per header, one column per kind.
type Matrix = [][]domain.Assessment

// ForHeaders assesses every header against every kind.
func ForHeaders[K ports.ColumnKind](kinds []K, headers []string) Matrix {
	return ForHeaderSeq(kinds, slices.Values(headers))
}

// ForHeaderSeq is ForHeaders over a sequence of headers.
func ForHeaderSeq[K ports.ColumnKind](kinds []K, headers iter.Seq[string]) Matrix {
	return build(kinds, headers, assessHeader[K])
}

// ForValues assesses every value against every kind using AssessValue.
func ForValues[K ports.ColumnKind](kinds []K, values []string) Matrix {
	return build(kinds, slices.Values(values), assessValue[K])
}

// HeaderRows lazily yields one matrix per candidate row, keyed by the row's
// index. Rows are pulled only as the consumer iterates; breaking out of the
// loop stops pulling.
func HeaderRows[K ports.ColumnKind](kinds []K, rows iter.Seq[[]string]) iter.Seq2[int, Matrix] {
	return func(yield func(int, Matrix) bool) {
		i := 0
		for row := range rows {
			if !yield(i, ForHeaders(kinds, row)) {
				return
			}
			i++
		}
	}
}

// Rows adapts a slice of rows to the sequence HeaderRows expects.
func Rows(rows [][]string) iter.Seq[[]string] {
	return slices.Values(rows)
}

func build[K ports.ColumnKind](kinds []K, items iter.Seq[string], assess func(K, string) float64) Matrix {
	matrix := Matrix{}
	position := 0
	for item := range items {
		matrix = append(matrix, assessRow(kinds, item, position, assess))
		position++
	}
	return matrix
}

func assessRow[K ports.ColumnKind](kinds []K, item string, position int, assess func(K, string) float64) []domain.Assessment {
	row := make([]domain.Assessment, 0, len(kinds))
	for _, kind := range kinds {
		row = append(row, domain.Assessment{
			Similarity: assess(kind, item),
			Position:   position,
		})
	}
	return row
}

func assessHeader[K ports.ColumnKind](kind K, header string) float64 {
	return kind.AssessHeader(header)
}

func assessValue[K ports.ColumnKind](kind K, value string) float64 {
	return kind.AssessValue(value)
}
