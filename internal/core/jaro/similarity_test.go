package jaro

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"", "", 1.0},
		{"", "abc", 0.0},
		{"abc", "", 0.0},
		{"a", "a", 1.0},
		{"ssn", "ssn", 1.0},
		{"abc", "xyz", 0.0},
		// Window is zero for two-character strings, so a swap never matches.
		{"ab", "ba", 0.0},
		{"MARTHA", "MARHTA", 0.9444444444444445},
		{"DWAYNE", "DUANE", 0.8222222222222223},
		{"DIXON", "DICKSONX", 0.7666666666666666},
		{"member id #", "member id", 0.9393939393939394},
		{"tier", "type", 0.6666666666666666},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Similarity(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"MARTHA", "MARHTA"},
		{"member id #", "member id"},
		{"subscriber name", "member name"},
		{"straße", "strasse"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-12, "%q vs %q", p[0], p[1])
	}
}

func TestSimilarityCountsRunesNotBytes(t *testing.T) {
	// "é" is two bytes; comparing byte-wise would produce partial matches.
	assert.Equal(t, 1.0, Similarity("café", "café"))
	assert.InDelta(t, Similarity("cafe", "cafx"), Similarity("café", "cafx"), 1e-12)
}

func TestSimilarityBounded(t *testing.T) {
	words := []string{"", "a", "ssn", "social security number", "member id", "0-0-0", "東京", "a a, a"}
	for _, a := range words {
		for _, b := range words {
			s := Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestSimilarityConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.InDelta(t, 0.9444444444444445, Similarity("MARTHA", "MARHTA"), 1e-12)
			}
		}()
	}
	wg.Wait()
}

func TestWinklerSimilarity(t *testing.T) {
	assert.InDelta(t, 0.9611111111111111, WinklerMetric{}.Similarity("MARTHA", "MARHTA"), 1e-12)
	assert.InDelta(t, 0.84, WinklerMetric{}.Similarity("DWAYNE", "DUANE"), 1e-12)
	assert.InDelta(t, 0.8133333333333332, WinklerMetric{}.Similarity("DIXON", "DICKSONX"), 1e-12)
	assert.Equal(t, 0.0, WinklerMetric{}.Similarity("abc", "xyz"))
	assert.Equal(t, 1.0, WinklerSimilarity("abc", "abc", 0.5, 10))
}

func TestMetric(t *testing.T) {
	assert.Equal(t, Similarity("plan", "product"), Metric{}.Similarity("plan", "product"))
}
