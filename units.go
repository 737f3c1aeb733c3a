package typescale

import (
	"fmt"
	"strings"
)

// Unit is a CSS length unit appended to generated values.
// The zero value means unitless output.
type Unit string

// Absolute units encode a fixed physical or pixel size.
const (
	UnitCM Unit = "cm"
	UnitMM Unit = "mm"
	UnitQ  Unit = "Q"
	UnitIN Unit = "in"
	UnitPC Unit = "pc"
	UnitPT Unit = "pt"
	UnitPX Unit = "px"
)

// Relative units encode a ratio to a reference size.
const (
	UnitEM  Unit = "em"
	UnitREM Unit = "rem"
)

// UnitNone disables unit suffixes.
const UnitNone Unit = ""

var absoluteUnits = map[Unit]bool{
	UnitCM: true,
	UnitMM: true,
	UnitQ:  true,
	UnitIN: true,
	UnitPC: true,
	UnitPT: true,
	UnitPX: true,
}

var relativeUnits = map[Unit]bool{
	UnitEM:  true,
	UnitREM: true,
}

// Units lists every recognized unit, absolute first.
func Units() []Unit {
	return []Unit{UnitCM, UnitMM, UnitQ, UnitIN, UnitPC, UnitPT, UnitPX, UnitEM, UnitREM}
}

// IsAbsolute reports whether u is one of the absolute units.
func (u Unit) IsAbsolute() bool { return absoluteUnits[u] }

// IsRelative reports whether u is em or rem.
func (u Unit) IsRelative() bool { return relativeUnits[u] }

// Valid reports whether u is unitless or a recognized unit.
func (u Unit) Valid() bool {
	return u == UnitNone || u.IsAbsolute() || u.IsRelative()
}

// ParseUnit converts user input into a Unit.
// "" and "none" select unitless output. Matching is exact except for
// surrounding whitespace, because "Q" and "q" are not the same unit.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return UnitNone, nil
	}
	u := Unit(s)
	if !u.Valid() {
		return UnitNone, &UnitError{Unit: s}
	}
	return u, nil
}

// UnitError reports an unrecognized unit string.
type UnitError struct {
	Unit string
}

func (e *UnitError) Error() string {
	names := make([]string, 0, len(Units()))
	for _, u := range Units() {
		names = append(names, string(u))
	}
	return fmt.Sprintf("unknown unit %q (expected one of %s)", e.Unit, strings.Join(names, ", "))
}
