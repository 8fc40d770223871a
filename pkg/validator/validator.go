// Package validator checks the shape of raw templates and compares the
// placeholders a template uses against the keys of a variable context.
package validator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/render"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// generator spans are stripped before looking for placeholders
var generatorSpan = regexp.MustCompile(`\{\{[^{}]*\}\}`)

// ValidateShape checks that a decoded template has a top level "dirs" list
func ValidateShape(raw map[string]interface{}) error {
	dirs, ok := raw["dirs"]
	if !ok {
		return errors.New(errors.ErrTemplateInvalid, "template root must have a 'dirs' list")
	}
	if _, ok := dirs.([]interface{}); !ok {
		return errors.Newf(errors.ErrTemplateInvalid, "template root 'dirs' must be a list, got %T", dirs).
			WithDetail("field", "dirs")
	}
	return nil
}

// CollectPlaceholders returns the variable keys referenced in s, ignoring
// generator tokens and placeholders directly adjacent to another brace.
func CollectPlaceholders(s string) []string {
	if s == "" {
		return nil
	}
	cleaned := generatorSpan.ReplaceAllString(s, "")

	var keys []string
	for _, p := range render.FindPlaceholders(cleaned) {
		keys = append(keys, p.Key())
	}
	return keys
}

// CollectUsedVars returns every variable key used by node names and file names
func CollectUsedVars(t *types.Template) map[string]struct{} {
	used := make(map[string]struct{})
	t.Walk(func(node *types.TemplateNode) {
		for _, k := range CollectPlaceholders(node.Name) {
			used[k] = struct{}{}
		}
		for _, f := range node.Files {
			for _, k := range CollectPlaceholders(f) {
				used[k] = struct{}{}
			}
		}
	})
	return used
}

// FindMissing returns the used variables absent from ctx, sorted
func FindMissing(t *types.Template, ctx types.Context) []string {
	var missing []string
	for k := range CollectUsedVars(t) {
		if _, ok := ctx[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

// FindUnused returns the context keys no placeholder refers to, sorted
func FindUnused(t *types.Template, ctx types.Context) []string {
	used := CollectUsedVars(t)
	var unused []string
	for _, k := range ctx.Keys() {
		if _, ok := used[k]; !ok {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)
	return unused
}

// RequireVars fails with VARIABLE_MISSING listing every absent key
func RequireVars(t *types.Template, ctx types.Context) error {
	missing := FindMissing(t, ctx)
	if len(missing) == 0 {
		return nil
	}
	return errors.Newf(errors.ErrVariableMissing, "missing variables in context: %s", strings.Join(missing, ", ")).
		WithDetail("missing", missing)
}
