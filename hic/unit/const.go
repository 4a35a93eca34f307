package unit

import "strings"

// Unit is the coordinate system of a zoom level.
type Unit int

const (
	BP Unit = iota
	FRAG
)

var (
	idx2strings = []string{
		"BP",
		"FRAG",
	}
)

func (u Unit) String() string {
	if u < 0 || int(u) >= len(idx2strings) {
		return "None"
	}
	return idx2strings[u]
}

// Parse reads the unit string of a matrix header. Anything that is not
// FRAG is treated as BP.
func Parse(s string) Unit {
	switch strings.ToLower(s) {
	case "frag":
		return FRAG
	}
	return BP
}
