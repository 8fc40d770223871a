package output

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/types"
	udiff "github.com/aymanbagabas/go-udiff"
)

// LoadReport reads a report previously written with WriteJSON
func LoadReport(path string) (*types.AuditReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "baseline report not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read baseline report %s", path)
	}
	var r types.AuditReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid baseline report %s", path).
			WithDetail("path", path)
	}
	return &r, nil
}

// DiffReports returns a unified diff between the JSON renderings of two
// reports. Identical reports give an empty string.
func DiffReports(baseline, current *types.AuditReport, baselineLabel, currentLabel string) (string, error) {
	a, err := reportText(baseline)
	if err != nil {
		return "", err
	}
	b, err := reportText(current)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	return udiff.Unified(baselineLabel, currentLabel, a, b), nil
}

func reportText(r *types.AuditReport) (string, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
