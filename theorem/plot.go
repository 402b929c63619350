// SPDX-License-Identifier: MIT

package theorem

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/cauchy/render"
)

// File names written by SavePlots.
const (
	PathFile    = "path.png"
	SurfaceFile = "surface.png"
)

// SavePlots renders r into dir, creating it if needed, and returns the files
// written. The surface plot is skipped when r has no surface. A nil opts
// means render.DefaultOptions().
func SavePlots(r *Report, dir string, opts *render.Options) ([]string, error) {
	if r == nil || r.Contour == nil {
		return nil, fmt.Errorf("SavePlots: %w", render.ErrNilInput)
	}
	if opts == nil {
		d := render.DefaultOptions()
		opts = &d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	var buf bytes.Buffer

	po := *opts
	if po.Title == "" {
		po.Title = fmt.Sprintf("Contour |z - (%g%+gi)| = %g", r.Params.CenterX, r.Params.CenterY, r.Params.Radius)
	}
	if err := render.PathPlot(&buf, r.Contour, &po); err != nil {
		return written, fmt.Errorf("SavePlots: %w", err)
	}
	name := filepath.Join(dir, PathFile)
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return written, err
	}
	written = append(written, name)

	if r.Surface != nil {
		buf.Reset()
		so := *opts
		if so.Title == "" {
			so.Title = "|f(z)| for f(z) = " + r.Label
		}
		if err := render.SurfacePlot(&buf, r.Surface, &so); err != nil {
			return written, fmt.Errorf("SavePlots: %w", err)
		}
		name = filepath.Join(dir, SurfaceFile)
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	Logger().Debug("plots written", slog.Any("files", written))
	return written, nil
}
