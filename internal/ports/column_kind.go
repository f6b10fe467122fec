package ports

// ColumnKind is a semantic category a table column may belong to.
//
// Both methods must be pure and deterministic. Higher scores mean a closer
// match; the provided assessors return values in [0, 1] but the interface
// does not enforce a range.
type ColumnKind interface {
	// AssessHeader reports how similar header is to what is expected for this kind.
	AssessHeader(header string) float64
	// AssessValue reports how similar value is to what is expected for this kind.
	AssessValue(value string) float64
}
