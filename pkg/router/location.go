package router

import "strings"

// Location is a normalized view address.
type Location string

// The complete set of locations.
const (
	Root              Location = "/"
	SelfDriven        Location = "/self-driven"
	SelfDrivenCode    Location = "/self-driven/code"
	ParentDriven      Location = "/parent-driven"
	ParentDrivenCode  Location = "/parent-driven/code"
	ContextDriven     Location = "/context-driven"
	ContextDrivenCode Location = "/context-driven/code"
)

var locations = []Location{
	Root,
	SelfDriven,
	SelfDrivenCode,
	ParentDriven,
	ParentDrivenCode,
	ContextDriven,
	ContextDrivenCode,
}

// Locations returns every known location in display order.
func Locations() []Location {
	out := make([]Location, len(locations))
	copy(out, locations)
	return out
}

// Valid reports whether l is one of the known locations.
func (l Location) Valid() bool {
	for _, known := range locations {
		if l == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return string(l)
}

// Normalize maps a raw fragment to a Location. A leading '#' is stripped;
// the empty fragment and every unknown value map to Root.
func Normalize(raw string) Location {
	l := Location(strings.TrimPrefix(raw, "#"))
	if l.Valid() {
		return l
	}
	return Root
}

// Recognized reports whether raw names a known location exactly. Callers use
// it to tell a silent normalization apart from a direct hit.
func Recognized(raw string) bool {
	s := strings.TrimPrefix(raw, "#")
	return s == "" || Location(s).Valid()
}
