package theme

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is an opaque configuration object forwarded verbatim to the
// external theming collaborator. This package contributes no theming logic
// of its own: keys and values pass through untouched.
type Theme map[string]any

// Load reads a theme from a YAML file. The content is not validated beyond
// being well-formed YAML; whatever the file declares is what collaborators
// receive.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return t, nil
}

// MustLoad works like Load but panics on failure. Useful when the theme
// file is required for the application to start.
func MustLoad(path string) Theme {
	t, err := Load(path)
	if err != nil {
		panic(err)
	}
	return t
}

// JSON renders the theme as JSON for transport to browser collaborators.
// A nil theme marshals to an empty object rather than null.
func (t Theme) JSON() ([]byte, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(t))
}
