package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/devinsights/benchcompare/internal/comparison"
	"gopkg.in/yaml.v3"
)

// Format selects how a comparison is written.
type Format string

const (
	// FormatText is the sectioned human-readable report.
	FormatText Format = "text"
	// FormatYAML is the derived comparison as a YAML document.
	FormatYAML Format = "yaml"
	// FormatJSON is the derived comparison as a JSON document.
	FormatJSON Format = "json"
)

var errUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, yaml or json)", errUnknownFormat, s)
	}
}

// Export writes cmp as a structured YAML or JSON document.
func Export(w io.Writer, cmp *comparison.Comparison, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cmp); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cmp); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, f)
	}
}
