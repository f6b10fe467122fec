// Package catalog loads column kinds and their dictionaries from YAML.
//
// Every dictionary entry is checked against its normalization when the
// catalog is loaded, so a catalog that loads without error never trips the
// scoring-time dictionary assertions.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/metric"
	"github.com/baditaflorin/go_header_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_header_similarity/internal/core/assessor"
	"github.com/baditaflorin/go_header_similarity/internal/core/domain"
)

var (
	// ErrUnknownKind is returned when a kind name is not in the catalog.
	ErrUnknownKind = errors.New("unknown column kind")
	// ErrInvalidCatalog is returned for structurally invalid catalogs.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed default.yaml
var defaultYAML []byte

// Kind is a column kind backed by a header and a value dictionary.
type Kind struct {
	Name       string
	Header     assessor.SimpleAssessor
	HeaderDict []string
	Value      assessor.SimpleAssessor
	ValueDict  []string
}

// AssessHeader implements ports.ColumnKind.
func (k Kind) AssessHeader(header string) float64 {
	return k.Header.WithDict(header, k.HeaderDict)
}

// AssessValue implements ports.ColumnKind.
func (k Kind) AssessValue(value string) float64 {
	return k.Value.WithDict(value, k.ValueDict)
}

// String returns the kind name.
func (k Kind) String() string {
	return k.Name
}

// Catalog is an ordered set of column kinds.
type Catalog struct {
	Kinds []Kind
	index map[string]int
}

// Names returns the kind names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Kinds))
	for i, k := range c.Kinds {
		names[i] = k.Name
	}
	return names
}

// Lookup returns the kind called name.
func (c *Catalog) Lookup(name string) (Kind, error) {
	i, ok := c.index[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return c.Kinds[i], nil
}

// Subset returns a catalog holding only the named kinds, in the given order.
func (c *Catalog) Subset(names ...string) (*Catalog, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return newCatalog(kinds)
}

// Default returns the embedded insurance billing catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile loads and parses a YAML catalog from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	return FromFile(&f)
}

// FromFile builds a Catalog from its YAML representation.
func FromFile(f *File) (*Catalog, error) {
	kinds := make([]Kind, 0, len(f.Kinds))
	for i, spec := range f.Kinds {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: kind %d has no name", ErrInvalidCatalog, i)
		}

		header, err := buildAssessor(spec.Header)
		if err != nil {
			return nil, fmt.Errorf("kind %q header: %w", spec.Name, err)
		}
		value, err := buildAssessor(spec.Value)
		if err != nil {
			return nil, fmt.Errorf("kind %q value: %w", spec.Name, err)
		}

		kinds = append(kinds, Kind{
			Name:       spec.Name,
			Header:     header,
			HeaderDict: spec.Header.Dictionary,
			Value:      value,
			ValueDict:  spec.Value.Dictionary,
		})
	}

	return newCatalog(kinds)
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

func newCatalog(kinds []Kind) (*Catalog, error) {
	index := make(map[string]int, len(kinds))
	for i, k := range kinds {
		if _, dup := index[k.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate kind %q", ErrInvalidCatalog, k.Name)
		}
		index[k.Name] = i
	}
	return &Catalog{Kinds: kinds, index: index}, nil
}

func buildAssessor(spec AssessorSpec) (assessor.SimpleAssessor, error) {
	cfg, err := normalizationConfig(spec)
	if err != nil {
		return assessor.SimpleAssessor{}, err
	}

	metricType, ok := metric.ParseType(spec.Metric)
	if !ok {
		return assessor.SimpleAssessor{}, fmt.Errorf("%w: unknown metric %q", ErrInvalidCatalog, spec.Metric)
	}

	if err := assessor.Validate(cfg, spec.Dictionary); err != nil {
		return assessor.SimpleAssessor{}, err
	}

	return assessor.New(cfg, metric.New(metricType)), nil
}

func normalizationConfig(spec AssessorSpec) (domain.NormalizationConfig, error) {
	if spec.Flags != nil {
		return domain.NormalizationConfig{
			CaseSensitive:   spec.Flags.CaseSensitive,
			DigitSensitive:  spec.Flags.DigitSensitive,
			NumberReduced:   spec.Flags.NumberReduced,
			AlphaReduced:    spec.Flags.AlphaReduced,
			WidthFolded:     spec.Flags.WidthFolded,
			AccentsStripped: spec.Flags.AccentsStripped,
		}, nil
	}

	if spec.Normalization == "" {
		return domain.DefaultNormalizationConfig(), nil
	}
	t, ok := normalizer.ParseType(spec.Normalization)
	if !ok {
		return domain.NormalizationConfig{}, fmt.Errorf("%w: unknown normalization %q", ErrInvalidCatalog, spec.Normalization)
	}
	return normalizer.ConfigFor(t), nil
}
