package catalog

// File is the YAML representation of a catalog.
type File struct {
	Version string     `yaml:"version,omitempty"`
	Kinds   []KindSpec `yaml:"kinds"`
}

// KindSpec describes one column kind.
type KindSpec struct {
	Name   string       `yaml:"name"`
	Header AssessorSpec `yaml:"header"`
	Value  AssessorSpec `yaml:"value"`
}

// AssessorSpec configures how one side of a kind is scored.
//
// Normalization names a preset (default, exact, digit_substituted,
// alpha_reduced, width_folded). Flags, when present, replace the preset.
type AssessorSpec struct {
	Normalization string    `yaml:"normalization,omitempty"`
	Flags         *FlagSpec `yaml:"flags,omitempty"`
	Metric        string    `yaml:"metric,omitempty"`
	Dictionary    []string  `yaml:"dictionary"`
}

// FlagSpec spells out a normalization configuration.
type FlagSpec struct {
	CaseSensitive   bool `yaml:"case_sensitive"`
	DigitSensitive  bool `yaml:"digit_sensitive"`
	NumberReduced   bool `yaml:"number_reduced"`
	AlphaReduced    bool `yaml:"alpha_reduced"`
	WidthFolded     bool `yaml:"width_folded"`
	AccentsStripped bool `yaml:"accents_stripped"`
}
