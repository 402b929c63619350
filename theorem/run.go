// SPDX-License-Identifier: MIT

package theorem

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/contour"
	"github.com/katalvlaran/cauchy/integral"
	"github.com/katalvlaran/cauchy/narrate"
	"github.com/katalvlaran/cauchy/scenario"
	"github.com/katalvlaran/cauchy/surface"
)

// Options tunes Run beyond the user-facing Params.
type Options struct {
	Tangent   contour.TangentMode
	Integral  integral.Options
	Surface   surface.Options
	SkipPlots bool // skip surface sampling entirely
}

// DefaultOptions returns the default tangent scheme, tolerance and grid.
func DefaultOptions() Options {
	return Options{
		Tangent:  contour.Gradient,
		Integral: integral.DefaultOptions(),
		Surface:  surface.DefaultOptions(),
	}
}

// Run executes one pass over p. A nil opts means DefaultOptions().
//
// Errors:
//   - scenario.ErrOutOfRange, analytic.ErrUnknownKind,
//     narrate.ErrUnsupportedLanguage for invalid p;
//   - analytic.ErrSingularPoint when a contour sample hits the pole.
func Run(p scenario.Params, opts *Options) (*Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	log := Logger().With(slog.String("function", p.Function.String()))

	if err := scenario.Validate(p); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	nar, err := narrate.New(p.Lang)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	c, err := contour.Circle(p.Center(), p.Radius, p.Points, contour.WithTangentMode(o.Tangent))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log.Debug("contour built",
		slog.Any("center", p.Center()),
		slog.Float64("radius", p.Radius),
		slog.Int("points", c.Len()),
		slog.String("tangent", o.Tangent.String()))

	f := analytic.Bind(p.Function, p.Center())
	res, err := integral.Evaluate(f, c, &o.Integral)
	if err != nil {
		if errors.Is(err, analytic.ErrSingularPoint) {
			log.Error("contour passes through a pole", slog.Any("error", err))
		}
		return nil, fmt.Errorf("Run: %w", err)
	}

	r := &Report{
		Params:    p,
		Label:     f.String(),
		Inside:    res.Inside,
		Value:     newComplex(res.Value),
		Reference: newComplex(res.Reference),
		AbsError:  res.AbsError,
		NearZero:  res.NearZero,
		Tolerance: o.Integral.Tolerance,
		Contour:   c,
	}
	r.Messages = append(r.Messages,
		nar.Banner(res.Inside),
		nar.Explain(p.Function, res.Inside),
		nar.Result(res.Value),
		nar.Numeric(res.NearZero),
		nar.OutsidePoints(),
	)
	log.Info("integral evaluated",
		slog.Bool("inside", res.Inside),
		slog.Any("value", res.Value),
		slog.Float64("abs_error", res.AbsError),
		slog.Bool("near_zero", res.NearZero))

	if o.SkipPlots {
		return r, nil
	}

	g, err := surface.Sample(f, p.Center(), p.Radius, &o.Surface)
	switch {
	case errors.Is(err, analytic.ErrSingularPoint):
		log.Warn("surface skipped", slog.Any("error", err))
		r.SurfaceErr = err.Error()
		r.Messages = append(r.Messages, nar.SurfaceUndefined())
	case err != nil:
		return nil, fmt.Errorf("Run: %w", err)
	default:
		r.Surface = g
		r.SurfaceMin, r.SurfaceMax = g.Range()
		r.Messages = append(r.Messages, nar.SurfaceRange(r.SurfaceMin, r.SurfaceMax))
		log.Debug("surface sampled",
			slog.Int("size", g.Size()),
			slog.Float64("min", r.SurfaceMin),
			slog.Float64("max", r.SurfaceMax))
	}

	return r, nil
}
