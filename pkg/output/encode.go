package output

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/plan"
	"gopkg.in/yaml.v3"
)

// Manifest formats
const (
	ManifestJSON  = "json"
	ManifestJSONL = "jsonl"
)

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write json")
	}
	return nil
}

// WriteYAML writes v as a YAML document
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write yaml")
	}
	return nil
}

// WriteManifest writes manifest entries as one JSON array or as JSON lines
func WriteManifest(w io.Writer, entries []plan.ManifestEntry, format string) error {
	switch format {
	case ManifestJSON, "":
		return WriteJSON(w, entries)
	case ManifestJSONL:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, e := range entries {
			if err := enc.Encode(e); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write manifest line")
			}
		}
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown manifest format: %s", format).
			WithDetail("format", format)
	}
}

// WriteFile creates path, and its parent directories, and fills it with fn
func WriteFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", path).
			WithDetail("path", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", path).
			WithDetail("path", path)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}
