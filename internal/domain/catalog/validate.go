package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Result accumulates validation diagnostics for a whole tool-config tree.
// Errors are fatal: the server must not register tools when any are present.
// Warnings are advisory and never block startup.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the configuration is safe to register from.
// Warnings do not affect validity.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a raw tool-config tree against the catalog in a single
// pass, accumulating every problem instead of stopping at the first one so
// the operator sees the full diagnosis in one run.
//
// Fatal errors: missing top-level "tools" key, missing or non-boolean
// "enabled", enabled category without a "tools" list, "tools" that is not a
// list. Advisory warnings: unknown category names and unknown tool names
// inside a known category — both are kept non-fatal so a newer config can
// run against an older catalog.
func Validate(tree map[string]any) Result {
	var res Result

	toolsValue, ok := tree["tools"]
	if !ok {
		res.Errors = append(res.Errors, "missing 'tools' key in configuration")
		return res
	}

	toolsConfig, ok := toolsValue.(map[string]any)
	if !ok {
		res.Errors = append(res.Errors, "'tools' must be a mapping of category configurations")
		return res
	}

	// Sorted for deterministic diagnostics; registration order is decided
	// elsewhere, from the document order.
	names := make([]string, 0, len(toolsConfig))
	for name := range toolsConfig {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		if !IsCategory(category) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown tool category: %s", category))
			continue
		}
		validateCategory(category, toolsConfig[category], &res)
	}

	return res
}

// validateCategory checks one category's {enabled, tools} block.
func validateCategory(category string, value any, res *Result) {
	cfg, ok := value.(map[string]any)
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("category '%s' must be a mapping", category))
		return
	}

	enabledValue, ok := cfg["enabled"]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("missing 'enabled' key for category '%s'", category))
		return
	}

	enabled, ok := enabledValue.(bool)
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("'enabled' must be boolean for category '%s'", category))
		return
	}

	// Disabled categories are not inspected further; a stale tools list is
	// harmless when nothing from it will be registered.
	if !enabled {
		return
	}

	toolsValue, ok := cfg["tools"]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("missing 'tools' key for category '%s'", category))
		return
	}

	list, ok := toolsValue.([]any)
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("'tools' must be a list for category '%s'", category))
		return
	}

	valid := Operations(category)
	for _, entry := range list {
		name, ok := entry.(string)
		if !ok {
			// Lenient on entry contents, like unknown names: selection by
			// exact string match simply never picks this entry up.
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"non-string tool entry %v in category '%s'", entry, category))
			continue
		}
		if !Has(category, name) {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"unknown tool '%s' in category '%s'. Valid tools: %s",
				name, category, strings.Join(valid, ", ")))
		}
	}
}
