package sample

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"gopkg.in/yaml.v3"
)

// Formats understood by Load and Marshal.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath picks the file format from the extension; anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a profile file, checks it against the profile schema and
// decodes it.
func Load(path string) (*types.Profile, error) {
	if path == "" {
		return nil, fmt.Errorf("sample path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample file %s: %w", path, err)
	}

	p, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid sample file %s: %w", path, err)
	}
	return p, nil
}

// Decode validates and decodes profile data in the given format.
func Decode(data []byte, format string) (*types.Profile, error) {
	doc := data
	if format == FormatYAML {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if v == nil {
			v = map[string]any{}
		}
		converted, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
		doc = converted
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		return nil, err
	}

	var p types.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}

// Marshal encodes a profile as indented JSON or YAML.
func Marshal(p *types.Profile, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}
