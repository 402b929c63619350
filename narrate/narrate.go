// SPDX-License-Identifier: MIT

package narrate

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/cauchy/analytic"
)

// ErrUnsupportedLanguage is returned for a language with no catalog entry.
var ErrUnsupportedLanguage = errors.New("narrate: unsupported language")

// Level mirrors the visual weight of a statement.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	for _, v := range []Level{Info, Success, Warning, Error} {
		if string(b) == v.String() {
			*l = v
			return nil
		}
	}
	return fmt.Errorf("narrate: unknown level %q", b)
}

// Message is one statement. Formula is an optional LaTeX line.
type Message struct {
	Level   Level  `json:"level"`
	Text    string `json:"text"`
	Formula string `json:"formula,omitempty"`
}

// Formulas attached to the explanations.
const (
	FormulaZero    = `\oint_C f(z)\,dz = 0`
	FormulaNonZero = `\oint_C f(z)\,dz \ne 0`
)

var matcher = language.NewMatcher(supported)

// Narrator renders statements in one language.
type Narrator struct {
	lang language.Tag
	p    *message.Printer
}

// New returns a Narrator for a BCP 47 language tag such as "en" or "id".
// An empty tag selects English. Regional variants (en-GB, id-ID) match their
// base language; any other base language is ErrUnsupportedLanguage.
func New(lang string) (*Narrator, error) {
	tag := language.English
	if lang != "" {
		want, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("New(%q): %w", lang, ErrUnsupportedLanguage)
		}
		_, idx, conf := matcher.Match(want)
		wantBase, _ := want.Base()
		gotBase, _ := supported[idx].Base()
		if conf == language.No || wantBase != gotBase {
			return nil, fmt.Errorf("New(%q): %w", lang, ErrUnsupportedLanguage)
		}
		tag = supported[idx]
	}

	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}
	return &Narrator{lang: tag, p: message.NewPrinter(tag, message.Catalog(cat))}, nil
}

// Language returns the selected language tag.
func (n *Narrator) Language() language.Tag { return n.lang }

// Banner reports whether a singularity lies inside the contour.
func (n *Narrator) Banner(inside bool) Message {
	if inside {
		return Message{Level: Warning, Text: n.p.Sprintf(keyBannerInside)}
	}
	return Message{Level: Success, Text: n.p.Sprintf(keyBannerOutside)}
}

// Explain selects one of the three canned explanations: entire and no pole
// inside, pole inside, or neither.
func (n *Narrator) Explain(kind analytic.Kind, inside bool) Message {
	switch {
	case kind.Entire() && !inside:
		return Message{Level: Info, Text: n.p.Sprintf(keyExplainEntire), Formula: FormulaZero}
	case inside:
		return Message{Level: Info, Text: n.p.Sprintf(keyExplainPole), Formula: FormulaNonZero}
	default:
		return Message{Level: Info, Text: n.p.Sprintf(keyExplainHedge)}
	}
}

// Result formats the integral estimate with five decimals.
func (n *Narrator) Result(v complex128) Message {
	return Message{Level: Info, Text: n.p.Sprintf(keyResult, n.FormatComplex(v))}
}

// Numeric reports whether the estimate counts as zero.
func (n *Narrator) Numeric(nearZero bool) Message {
	if nearZero {
		return Message{Level: Success, Text: n.p.Sprintf(keyNearZero)}
	}
	return Message{Level: Warning, Text: n.p.Sprintf(keyNotNearZero)}
}

// OutsidePoints explains the decorative markers drawn outside the contour.
func (n *Narrator) OutsidePoints() Message {
	return Message{Level: Info, Text: n.p.Sprintf(keyOutside), Formula: `\oint_C f(z)\,dz`}
}

// SurfaceUndefined reports that the surface grid hit a pole.
func (n *Narrator) SurfaceUndefined() Message {
	return Message{Level: Error, Text: n.p.Sprintf(keySurfaceUndefined)}
}

// SurfaceRange summarizes the magnitudes on the surface grid.
func (n *Narrator) SurfaceRange(lo, hi float64) Message {
	return Message{Level: Info, Text: n.p.Sprintf(keySurfaceRange, lo, hi)}
}

// FormatComplex prints v as "a+bi" with five decimals in the locale's
// number format.
func (n *Narrator) FormatComplex(v complex128) string {
	sign := "+"
	im := imag(v)
	if im < 0 || (im == 0 && math.Signbit(im)) {
		sign = "-"
		im = -im
	}
	return n.p.Sprintf("%.5f", real(v)) + sign + n.p.Sprintf("%.5f", im) + "i"
}
