package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/utilkit/pkg/query"
)

// OutputFormat selects how structured results are written.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputTOML OutputFormat = "toml"
)

func parseOutput(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputJSON, OutputYAML, OutputTOML:
		return f, nil
	case "yml":
		return OutputYAML, nil
	default:
		return "", errors.Join(ErrUnsupportedOutput, fmt.Errorf("%q", s))
	}
}

// writeParams writes p in the requested format. JSON and YAML keep key
// order; TOML tables are written with sorted keys.
func writeParams(w io.Writer, format OutputFormat, p *query.Params) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case OutputTOML:
		return toml.NewEncoder(w).Encode(p.Map())
	default:
		return writeJSON(w, p)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
