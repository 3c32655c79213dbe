package geo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
var ErrUnknownUnit = errors.New("geo: unknown distance unit")

// Unit is the length unit edge weights are expressed in.
// The zero value means Meters.
type Unit int

const (
	// Meters is the default unit.
	Meters Unit = iota
	// Kilometers scales distances by 1/1000.
	Kilometers
)

// FromMeters converts a distance in meters into u.
func (u Unit) FromMeters(m float64) float64 {
	if u == Kilometers {
		return m / 1000
	}

	return m
}

// String returns the short unit symbol ("m" or "km").
func (u Unit) String() string {
	if u == Kilometers {
		return "km"
	}

	return "m"
}

// ParseUnit accepts "", "m", "meter(s)", "metre(s)", "km", "kilometer(s)",
// "kilometre(s)" in any case. The empty string maps to Meters.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "meter", "meters", "metre", "metres":
		return Meters, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	}

	return Meters, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(b []byte) error {
	parsed, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}
