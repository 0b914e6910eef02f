// Package theme carries a pass-through theming configuration for the
// render collaborator.
//
// The theme is accepted as-is and forwarded verbatim; no defaulting,
// validation, or merging happens here. A YAML loader is provided for
// file-based themes and JSON serialization for transport:
//
//	t, err := theme.Load("theme.yaml")
//	if err != nil {
//		// Handle error
//	}
//	payload, _ := t.JSON()
package theme
