package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrides merges per-material property overrides from a YAML file into
// the catalog. The file maps catalog names to full property sets; names not
// in the closed catalog are rejected rather than silently added, so the
// Steel fallback set stays fixed.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	overrides := make(map[string]Properties)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse material overrides %s: %w", path, err)
	}
	for name, props := range overrides {
		if !Known(name) {
			return fmt.Errorf("material overrides %s: unknown material %q", path, name)
		}
		catalog[name] = props
	}
	return nil
}
