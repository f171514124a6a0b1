// Package plan reads and writes growplan plan files.
//
// A plan file is a small TOML document carrying the full parameter surface of
// one greenhouse layout. Plan files are the only thing growplan persists; the
// computed rectangles are always derived fresh from the parameters.
package plan

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	gperrors "github.com/matzehuels/growplan/pkg/errors"
	"github.com/matzehuels/growplan/pkg/layout"
)

// File is the on-disk shape of a plan document.
type File struct {
	Name       string        `toml:"name,omitempty"`
	Greenhouse layout.Params `toml:"greenhouse"`
}

// Read parses the plan file at path. Unknown keys are rejected so typos in a
// hand-edited file surface immediately instead of silently falling back to
// defaults. Enum fields are validated; numeric fields are left to the layout
// clamping policy.
func Read(path string) (layout.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return layout.Params{}, gperrors.Wrap(gperrors.ErrCodeFileNotFound, err, "plan file %s", path)
		}
		return layout.Params{}, gperrors.Wrap(gperrors.ErrCodeInvalidPlan, err, "read plan file %s", path)
	}
	return Parse(data)
}

// Parse decodes a plan document from raw TOML.
func Parse(data []byte) (layout.Params, error) {
	f := File{Greenhouse: layout.DefaultParams()}

	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return layout.Params{}, gperrors.Wrap(gperrors.ErrCodeInvalidPlan, err, "parse plan")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return layout.Params{}, gperrors.New(gperrors.ErrCodeInvalidPlan,
			"unknown keys in plan: %s", strings.Join(keys, ", "))
	}

	p := f.Greenhouse
	if p.Orientation != "" {
		if _, err := layout.ParseOrientation(string(p.Orientation)); err != nil {
			return layout.Params{}, gperrors.Wrap(gperrors.ErrCodeInvalidOrientation, err, "plan orientation")
		}
	}
	if p.Mode != "" {
		if _, err := layout.ParseMode(string(p.Mode)); err != nil {
			return layout.Params{}, gperrors.Wrap(gperrors.ErrCodeInvalidMode, err, "plan mode")
		}
	}
	return p, nil
}

// Write encodes params as a plan document at path.
func Write(path, name string, p layout.Params) error {
	var buf bytes.Buffer
	buf.WriteString(header)

	f := File{Name: name, Greenhouse: p}
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}
	return nil
}

const header = `# growplan plan file. All distances are meters.
#
# orientation: "ns" (beds run along the length) or "ew" (along the width)
# mode:        "beds" (soil beds) or "benches" (ebb-flow benches)
# export_dpi:  raster export resolution, clamped to 100-300
#
# include_service/service_width describe a center service aisle; they are
# stored with the plan but not placed yet.

`
