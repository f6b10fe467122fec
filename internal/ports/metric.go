package ports

// Metric scores two canonical strings. Implementations return values in [0, 1],
// where 1 means identical.
type Metric interface {
	Similarity(a, b string) float64
}

// MetricFunc adapts a plain function to the Metric interface.
type MetricFunc func(a, b string) float64

// Similarity calls f(a, b).
func (f MetricFunc) Similarity(a, b string) float64 {
	return f(a, b)
}
