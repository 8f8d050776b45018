package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"object-synth/generator"
	"object-synth/hints"
)

// Range is an inclusive [Min, Max] bound.
type Range[T int | int64 | float64] struct {
	Min T `yaml:"min"`
	Max T `yaml:"max"`
}

// Settings configure a population run.
type Settings struct {
	Mode                    Mode           `yaml:"mode"`
	Seed                    *uint64        `yaml:"seed,omitempty"`
	MaxDepth                int            `yaml:"max_depth"`
	AfterGenerate           hints.Action   `yaml:"after_generate"`
	OverwriteExistingValues bool           `yaml:"overwrite_existing_values"`
	CollectionSize          Range[int]     `yaml:"collection_size"`
	MapSize                 Range[int]     `yaml:"map_size"`
	StringLength            Range[int]     `yaml:"string_length"`
	IntegerRange            Range[int64]   `yaml:"integer_range"`
	FloatRange              Range[float64] `yaml:"float_range"`
	LeafTypes               []string       `yaml:"leaf_types,omitempty"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		Mode:                    ModeStrict,
		MaxDepth:                8,
		AfterGenerate:           hints.ActionFillNullsAndDefaultPrimitives,
		OverwriteExistingValues: true,
		CollectionSize:          Range[int]{Min: 2, Max: 6},
		MapSize:                 Range[int]{Min: 2, Max: 6},
		StringLength:            Range[int]{Min: 3, Max: 10},
		IntegerRange:            Range[int64]{Min: 1, Max: 10000},
		FloatRange:              Range[float64]{Min: 1, Max: 10000},
	}
}

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data on top of Defaults. Keys that are not present
// keep their default.
func Parse(data []byte) (Settings, error) {
	s := Defaults()

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&s)

	return s.Validate()
}

// Marshal serializes Settings to YAML.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// applyDefaults fills in values that YAML may have explicitly zeroed.
func applyDefaults(s *Settings) {
	if s.AfterGenerate == hints.ActionUnset {
		s.AfterGenerate = Defaults().AfterGenerate
	}
}

// Validate checks the settings and returns an adjusted copy. A range whose
// Min exceeds its Max gets its Max raised to Min plus half of Min.
func (s Settings) Validate() (Settings, error) {
	var errs []error

	if s.AfterGenerate == hints.ActionUnset {
		errs = append(errs, errors.New("after_generate must be set"))
	}

	sizes := []struct {
		name string
		r    Range[int]
	}{
		{name: "collection_size", r: s.CollectionSize},
		{name: "map_size", r: s.MapSize},
		{name: "string_length", r: s.StringLength},
	}
	for _, size := range sizes {
		if size.r.Min < 0 || size.r.Max < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got [%d, %d]", size.name, size.r.Min, size.r.Max))
		}
	}

	if len(errs) > 0 {
		return Settings{}, fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}

	s.CollectionSize = adjust(s.CollectionSize)
	s.MapSize = adjust(s.MapSize)
	s.StringLength = adjust(s.StringLength)
	s.IntegerRange = adjust(s.IntegerRange)
	s.FloatRange = adjust(s.FloatRange)
	s.LeafTypes = append([]string(nil), s.LeafTypes...)

	return s, nil
}

func adjust[T int | int64 | float64](r Range[T]) Range[T] {
	if r.Min <= r.Max {
		return r
	}

	delta := r.Min / 2
	if delta < 0 {
		delta = -delta
	}
	r.Max = r.Min + delta

	return r
}

// Strict reports whether the run is in strict mode.
func (s Settings) Strict() bool {
	return s.Mode == ModeStrict
}

// Limits returns the leaf value limits for the generator catalog.
func (s Settings) Limits() generator.Limits {
	return generator.Limits{
		StringMin: s.StringLength.Min,
		StringMax: s.StringLength.Max,
		IntMin:    s.IntegerRange.Min,
		IntMax:    s.IntegerRange.Max,
		FloatMin:  s.FloatRange.Min,
		FloatMax:  s.FloatRange.Max,
	}
}

// WithSeed returns a copy with a fixed seed.
func (s Settings) WithSeed(seed uint64) Settings {
	s.Seed = &seed
	return s
}

// WithMode returns a copy with the given mode.
func (s Settings) WithMode(m Mode) Settings {
	s.Mode = m
	return s
}

// WithAfterGenerate returns a copy with the given default action.
func (s Settings) WithAfterGenerate(a hints.Action) Settings {
	s.AfterGenerate = a
	return s
}

// WithOverwriteExistingValues returns a copy with the overwrite switch set.
func (s Settings) WithOverwriteExistingValues(overwrite bool) Settings {
	s.OverwriteExistingValues = overwrite
	return s
}

// WithMaxDepth returns a copy with the given depth limit.
func (s Settings) WithMaxDepth(depth int) Settings {
	s.MaxDepth = depth
	return s
}

// WithCollectionSize returns a copy with the given collection size range.
func (s Settings) WithCollectionSize(lo, hi int) Settings {
	s.CollectionSize = Range[int]{Min: lo, Max: hi}
	return s
}

// WithMapSize returns a copy with the given map size range.
func (s Settings) WithMapSize(lo, hi int) Settings {
	s.MapSize = Range[int]{Min: lo, Max: hi}
	return s
}
