// SPDX-License-Identifier: MIT

package analytic

import (
	"fmt"
	"strings"
)

// Kind tags one of the supported test functions.
type Kind int

const (
	// Square is f(z) = z², entire.
	Square Kind = iota
	// Reciprocal is f(z) = 1/z, simple pole at 0.
	Reciprocal
	// Exponential is f(z) = exp(z), entire.
	Exponential
	// ShiftedReciprocal is f(z) = 1/(z−a), simple pole at a.
	ShiftedReciprocal
	// Sine is f(z) = sin(z), entire.
	Sine

	numKinds
)

var kindNames = [numKinds]string{
	Square:            "square",
	Reciprocal:        "reciprocal",
	Exponential:       "exponential",
	ShiftedReciprocal: "shifted-reciprocal",
	Sine:              "sine",
}

var kindLabels = [numKinds]string{
	Square:            "z^2",
	Reciprocal:        "1/z",
	Exponential:       "exp(z)",
	ShiftedReciprocal: "1/(z-a)",
	Sine:              "sin(z)",
}

// Kinds returns every supported Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// String returns the canonical name, e.g. "shifted-reciprocal".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label returns the formula shown to users, e.g. "1/(z-a)".
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// ParseKind accepts a canonical name or a formula label, case-insensitive,
// with an optional "f(z) =" prefix.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSpace(strings.TrimPrefix(key, "f(z) ="))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "**", "^")
	for k := Kind(0); k < numKinds; k++ {
		if key == kindNames[k] || key == kindLabels[k] {
			return k, nil
		}
	}
	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(k), ErrUnknownKind)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
