package settings

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode controls how strictly a run treats selector problems.
type Mode int

const (
	// ModeStrict fails a run that has unused selectors and logs policy
	// conflicts as warnings.
	ModeStrict Mode = iota
	// ModeLenient reports unused selectors as diagnostics only.
	ModeLenient
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "strict" or "lenient", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return ModeStrict, nil
	case "lenient":
		return ModeLenient, nil
	default:
		return ModeStrict, fmt.Errorf("unknown mode %q", s)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Mode.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*m = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Mode.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}
