// SPDX-License-Identifier: MIT

// Command cauchyviz evaluates ∮_C f(z) dz over a circle for one of the
// built-in test functions, prints an explained verdict and optionally writes
// the contour and |f| surface plots as PNG files.
//
// Parameters are layered: defaults, then the YAML file given by -config (or
// $CAUCHY_CONFIG), then CAUCHY_* environment variables, then flags.
//
// Exit codes:
//
//	0  success
//	1  usage error
//	2  invalid parameters or configuration
//	3  the contour passes through a pole, or the plots cannot be written
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/cauchy/analytic"
	"github.com/katalvlaran/cauchy/narrate"
	"github.com/katalvlaran/cauchy/render"
	"github.com/katalvlaran/cauchy/scenario"
	"github.com/katalvlaran/cauchy/theorem"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitInvalid = 2
	exitFailure = 3
)

// Replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		flagConfig   string
		flagRadius   float64
		flagCX       float64
		flagCY       float64
		flagPoints   int
		flagFunc     string
		flagLang     string
		flagOut      string
		flagFormat   string
		flagLogLevel string
		flagSize     int
	)
	fs := flag.CommandLine
	fs.SetOutput(stderr)
	fs.StringVar(&flagConfig, "config", "", "YAML scenario file (default $CAUCHY_CONFIG)")
	fs.Float64Var(&flagRadius, "radius", 0, "contour radius, 0.1..5")
	fs.Float64Var(&flagCX, "cx", 0, "center real part, -5..5")
	fs.Float64Var(&flagCY, "cy", 0, "center imaginary part, -5..5")
	fs.IntVar(&flagPoints, "points", 0, "samples on the contour, 20..500")
	fs.StringVar(&flagFunc, "func", "", "test function: "+kindList())
	fs.StringVar(&flagLang, "lang", "", "output language: en or id")
	fs.StringVar(&flagOut, "out", "", "directory for path.png and surface.png; empty skips plots")
	fs.StringVar(&flagFormat, "format", "text", "report format: text or json")
	fs.StringVar(&flagLogLevel, "log-level", "warn", "log level on stderr: debug, info, warn, error")
	fs.IntVar(&flagSize, "size", 720, "plot width and height in pixels")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return exitUsage
	}
	if flagFormat != "text" && flagFormat != "json" {
		fmt.Fprintf(stderr, "unknown -format %q\n", flagFormat)
		return exitUsage
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		fmt.Fprintf(stderr, "bad -log-level: %v\n", err)
		return exitUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	theorem.SetLogger(logger)
	defer theorem.SetLogger(nil)

	if flagConfig == "" {
		flagConfig = os.Getenv("CAUCHY_CONFIG")
	}

	p := scenario.Defaults()
	if flagConfig != "" {
		patch, err := scenario.Load(flagConfig)
		if err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return exitInvalid
		}
		p = scenario.Merge(p, patch)
	}

	envPatch, err := scenario.EnvOverlay(os.Environ())
	if err != nil {
		fmt.Fprintf(stderr, "environment: %v\n", err)
		return exitInvalid
	}
	p = scenario.Merge(p, envPatch)

	// Only flags given on the command line override.
	var cli scenario.Patch
	var kindErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "radius":
			cli.Radius = &flagRadius
		case "cx":
			cli.CenterX = &flagCX
		case "cy":
			cli.CenterY = &flagCY
		case "points":
			cli.Points = &flagPoints
		case "func":
			k, err := analytic.ParseKind(flagFunc)
			if err != nil {
				kindErr = err
				return
			}
			cli.Function = &k
		case "lang":
			cli.Lang = &flagLang
		}
	})
	if kindErr != nil {
		fmt.Fprintf(stderr, "-func: %v\n", kindErr)
		return exitInvalid
	}
	p = scenario.Merge(p, cli)
	logger.Debug("parameters resolved", slog.Any("params", p), slog.String("config", flagConfig))

	report, err := theorem.Run(p, nil)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitCode(err)
	}

	if flagOut != "" {
		ro := render.DefaultOptions()
		ro.Width, ro.Height = flagSize, flagSize
		files, err := theorem.SavePlots(report, flagOut, &ro)
		if err != nil {
			fmt.Fprintf(stderr, "plots: %v\n", err)
			return exitCode(err)
		}
		logger.Info("plots written", slog.Int("count", len(files)), slog.String("dir", flagOut))
	}

	if flagFormat == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return exitFailure
		}
		return exitOK
	}
	writeText(stdout, report)
	return exitOK
}

// exitCode maps an error to the process exit code by sentinel.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, scenario.ErrOutOfRange),
		errors.Is(err, scenario.ErrBadEnv),
		errors.Is(err, analytic.ErrUnknownKind),
		errors.Is(err, narrate.ErrUnsupportedLanguage),
		errors.Is(err, render.ErrBadSize):
		return exitInvalid
	default:
		// analytic.ErrSingularPoint on the contour, I/O and render errors.
		return exitFailure
	}
}

func writeText(w io.Writer, r *theorem.Report) {
	p := r.Params
	fmt.Fprintf(w, "f(z) = %s on |z - (%g%+gi)| = %g, %d points\n", r.Label, p.CenterX, p.CenterY, p.Radius, p.Points)
	for _, m := range r.Messages {
		fmt.Fprintf(w, "[%s] %s\n", m.Level, m.Text)
		if m.Formula != "" {
			fmt.Fprintf(w, "    %s\n", m.Formula)
		}
	}
}

func kindList() string {
	names := make([]string, 0, len(analytic.Kinds()))
	for _, k := range analytic.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
