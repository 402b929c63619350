// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/narrate"
)

// Defaults returns the unit circle at the origin, 200 samples, f(z) = z²,
// English output.
func Defaults() Params {
	return Params{
		Radius:   1.0,
		Points:   200,
		Function: analytic.Square,
		Lang:     "en",
	}
}

// Load reads a YAML Patch from path. Unknown keys are rejected.
func Load(path string) (Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Patch{}, err
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Patch{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	return p, nil
}

// Decode reads a YAML Patch from r. An empty document yields an empty Patch.
func Decode(r io.Reader) (Patch, error) {
	var p Patch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Patch{}, err
	}
	return p, nil
}

// Encode writes p as YAML to w.
func Encode(w io.Writer, p Params) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Merge applies the present fields of over on top of base.
func Merge(base Params, over Patch) Params {
	out := base
	if over.Radius != nil {
		out.Radius = *over.Radius
	}
	if over.CenterX != nil {
		out.CenterX = *over.CenterX
	}
	if over.CenterY != nil {
		out.CenterY = *over.CenterY
	}
	if over.Points != nil {
		out.Points = *over.Points
	}
	if over.Function != nil {
		out.Function = *over.Function
	}
	if over.Lang != nil && strings.TrimSpace(*over.Lang) != "" {
		out.Lang = strings.TrimSpace(*over.Lang)
	}
	return out
}

// Environment variables read by EnvOverlay.
const (
	EnvRadius   = "CAUCHY_RADIUS"
	EnvCenterX  = "CAUCHY_CENTER_X"
	EnvCenterY  = "CAUCHY_CENTER_Y"
	EnvPoints   = "CAUCHY_POINTS"
	EnvFunction = "CAUCHY_FUNCTION"
	EnvLang     = "CAUCHY_LANG"
)

// EnvOverlay builds a Patch from KEY=VALUE pairs as returned by os.Environ.
// Empty values are ignored.
func EnvOverlay(environ []string) (Patch, error) {
	var p Patch
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "CAUCHY_") {
			continue
		}
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}

		switch key {
		case EnvRadius, EnvCenterX, EnvCenterY:
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Patch{}, fmt.Errorf("EnvOverlay %s=%q: %w", key, val, ErrBadEnv)
			}
			switch key {
			case EnvRadius:
				p.Radius = &v
			case EnvCenterX:
				p.CenterX = &v
			default:
				p.CenterY = &v
			}
		case EnvPoints:
			v, err := strconv.Atoi(val)
			if err != nil {
				return Patch{}, fmt.Errorf("EnvOverlay %s=%q: %w", key, val, ErrBadEnv)
			}
			p.Points = &v
		case EnvFunction:
			k, err := analytic.ParseKind(val)
			if err != nil {
				return Patch{}, fmt.Errorf("EnvOverlay %s: %w", key, err)
			}
			p.Function = &k
		case EnvLang:
			p.Lang = &val
		}
	}
	return p, nil
}

// Validate reports the first parameter of p outside its accepted range.
func Validate(p Params) error {
	if !inRange(p.Radius, MinRadius, MaxRadius) {
		return fmt.Errorf("Validate: radius=%g not in [%g, %g]: %w", p.Radius, MinRadius, MaxRadius, ErrOutOfRange)
	}
	if !inRange(p.CenterX, MinCenter, MaxCenter) {
		return fmt.Errorf("Validate: center_x=%g not in [%g, %g]: %w", p.CenterX, MinCenter, MaxCenter, ErrOutOfRange)
	}
	if !inRange(p.CenterY, MinCenter, MaxCenter) {
		return fmt.Errorf("Validate: center_y=%g not in [%g, %g]: %w", p.CenterY, MinCenter, MaxCenter, ErrOutOfRange)
	}
	if p.Points < MinPoints || p.Points > MaxPoints {
		return fmt.Errorf("Validate: points=%d not in [%d, %d]: %w", p.Points, MinPoints, MaxPoints, ErrOutOfRange)
	}
	if !p.Function.Valid() {
		return fmt.Errorf("Validate: %w", analytic.ErrUnknownKind)
	}
	if _, err := narrate.New(p.Lang); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	return nil
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
