// Package template loads folder templates and variable contexts from JSON
// or YAML files.
package template

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/types"
	"github.com/arthur-debert/foldergen/pkg/validator"
	"gopkg.in/yaml.v3"
)

// Format is an input file format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadTemplate reads, shape-checks and decodes a template file
func LoadTemplate(path string) (*types.Template, error) {
	logger := logging.GetLogger("template").With().Str("path", path).Logger()

	data, err := readInput(path, "template")
	if err != nil {
		return nil, err
	}
	tpl, err := ParseTemplate(data, FormatFor(path))
	if err != nil {
		if fe, ok := err.(*errors.FoldergenError); ok {
			fe.WithDetail("path", path)
		}
		return nil, err
	}

	roots := len(tpl.Dirs)
	logger.Debug().Int("roots", roots).Msg("Loaded template")
	return tpl, nil
}

// ParseTemplate decodes template data in the given format
func ParseTemplate(data []byte, format Format) (*types.Template, error) {
	raw := make(map[string]interface{})
	if err := unmarshal(data, format, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "failed to parse %s template", format)
	}
	if err := validator.ValidateShape(raw); err != nil {
		return nil, err
	}

	var tpl types.Template
	if err := unmarshal(data, format, &tpl); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateInvalid, "invalid template structure")
	}
	return &tpl, nil
}

// LoadContext reads a flat variable mapping
func LoadContext(path string) (types.Context, error) {
	data, err := readInput(path, "vars")
	if err != nil {
		return nil, err
	}
	ctx, err := ParseContext(data, FormatFor(path))
	if err != nil {
		if fe, ok := err.(*errors.FoldergenError); ok {
			fe.WithDetail("path", path)
		}
		return nil, err
	}
	logger := logging.GetLogger("template")
	logger.Debug().Str("path", path).Int("keys", len(ctx)).Msg("Loaded variables")
	return ctx, nil
}

// ParseContext decodes variable data in the given format. An empty
// document is an empty context.
func ParseContext(data []byte, format Format) (types.Context, error) {
	ctx := types.Context{}
	if len(bytes.TrimSpace(data)) == 0 {
		return ctx, nil
	}
	if err := unmarshal(data, format, &ctx); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "failed to parse %s variables", format)
	}
	if err := requireScalars(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// requireScalars rejects nested objects and lists. Null is kept and renders
// like any other scalar.
func requireScalars(ctx types.Context) error {
	keys := ctx.Keys()
	sort.Strings(keys)
	for _, k := range keys {
		switch ctx[k].(type) {
		case map[string]interface{}, map[interface{}]interface{}, []interface{}:
			return errors.Newf(errors.ErrTemplateInvalid, "variable %q must be a scalar value", k).
				WithDetail("key", k)
		}
	}
	return nil
}

func readInput(path, role string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "%s file not found: %s", role, path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s file: %s", role, path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s should be a file, got directory: %s", role, path).
			WithDetail("path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s file: %s", role, path)
	}
	return data, nil
}

func unmarshal(data []byte, format Format, v interface{}) error {
	if format == FormatYAML {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}
