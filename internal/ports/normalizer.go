package ports

// Normalizer defines the interface for text canonicalization.
type Normalizer interface {
	Normalize(text string) string
}
