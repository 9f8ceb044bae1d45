package mapmeta

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportYAML serializes the map to a human-readable YAML document. Export
// is display-only; nothing in the editor reads it back.
func ExportYAML(m *Map) (string, error) {
	if m == nil {
		return "", fmt.Errorf("mapmeta: export: no map")
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("mapmeta: export %q: %w", m.Name, err)
	}
	return string(data), nil
}
