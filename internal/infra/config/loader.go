package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by LoadToolConfig when the file is absent.
var ErrConfigNotFound = errors.New("tool config file not found")

// ToolConfig is the tool enablement tree loaded from config.yaml. It is
// built once at startup and read-only afterwards.
//
// The raw tree keeps YAML mapping values as map[string]any so dotted-path
// lookups stay schema-free; categoryOrder preserves the document order of
// the keys under "tools", because registration order follows configuration
// order.
type ToolConfig struct {
	raw           map[string]any
	categoryOrder []string
}

// LoadToolConfig reads and parses the YAML tool configuration at path.
// A missing file yields ErrConfigNotFound; malformed YAML yields a wrapped
// parse error. A missing top-level "tools" key is legal here — whether that
// is acceptable is the validator's call, not the loader's.
func LoadToolConfig(path string) (*ToolConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading tool config %q: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing tool config %q: %w", path, err)
	}

	cfg := &ToolConfig{raw: map[string]any{}}
	// An empty file decodes to a zero node; treat it as an empty tree.
	if root.Kind != 0 {
		if err := root.Decode(&cfg.raw); err != nil {
			return nil, fmt.Errorf("parsing tool config %q: %w", path, err)
		}
		cfg.categoryOrder = toolsKeyOrder(&root)
	}
	return cfg, nil
}

// toolsKeyOrder walks the document node and returns the mapping keys under
// the top-level "tools" key in document order.
func toolsKeyOrder(root *yaml.Node) []string {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	// Mapping nodes store key/value pairs as alternating content entries.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "tools" {
			continue
		}
		tools := doc.Content[i+1]
		if tools.Kind != yaml.MappingNode {
			return nil
		}
		order := make([]string, 0, len(tools.Content)/2)
		for j := 0; j+1 < len(tools.Content); j += 2 {
			order = append(order, tools.Content[j].Value)
		}
		return order
	}
	return nil
}

// Raw returns the underlying configuration tree for validation.
func (c *ToolConfig) Raw() map[string]any {
	return c.raw
}

// Get resolves a dot-separated path ("tools.market.enabled") by descending
// mapping keys. It returns def the moment any segment is missing or the
// current node is not a mapping — partial paths never panic.
func (c *ToolConfig) Get(path string, def any) any {
	var current any = c.raw
	for _, key := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return def
		}
		current, ok = node[key]
		if !ok {
			return def
		}
	}
	return current
}

// IsToolEnabled reports whether tool is enabled: its category must have
// enabled: true and the tool must appear in the category's tools list.
func (c *ToolConfig) IsToolEnabled(category, tool string) bool {
	enabled, _ := c.Get("tools."+category+".enabled", false).(bool)
	if !enabled {
		return false
	}
	for _, name := range c.EnabledTools(category) {
		if name == tool {
			return true
		}
	}
	return false
}

// EnabledTools returns the configured tool names for category, or an empty
// slice when the category is disabled or absent. Non-string list entries are
// dropped; the validator has already warned about them.
func (c *ToolConfig) EnabledTools(category string) []string {
	enabled, _ := c.Get("tools."+category+".enabled", false).(bool)
	if !enabled {
		return []string{}
	}
	return stringList(c.Get("tools."+category+".tools", []any{}))
}

// AllEnabledTools returns every enabled category mapped to its tools list,
// defaulting to empty when the list is absent. Derived from the read-only
// tree, so repeated calls yield identical results.
func (c *ToolConfig) AllEnabledTools() map[string][]string {
	out := make(map[string][]string)
	for _, category := range c.EnabledCategories() {
		out[category] = stringList(c.Get("tools."+category+".tools", []any{}))
	}
	return out
}

// EnabledCategories returns enabled category names in configuration order.
func (c *ToolConfig) EnabledCategories() []string {
	var out []string
	for _, category := range c.categoryOrder {
		if enabled, _ := c.Get("tools."+category+".enabled", false).(bool); enabled {
			out = append(out, category)
		}
	}
	return out
}

// stringList converts a decoded YAML sequence into its string entries.
func stringList(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
