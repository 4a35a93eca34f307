package normtype

import "strings"

// Type is a normalization scheme stored in a .hic footer.
type Type int

const (
	NONE Type = iota
	VC
	VC_SQRT
	KR
	GW_KR
	INTER_KR
	GW_VC
	INTER_VC
	SCALE
	LOADED
)

var (
	idx2strings = []string{
		"None",
		"Coverage",
		"Coverage (Sqrt)",
		"Balanced",
		"Genome-Wide Balanced",
		"Inter Balanced",
		"Genome-Wide Coverage",
		"Inter Coverage",
		"Balanced++",
		"Loaded",
	}
	idx2strs = []string{
		"NONE",
		"VC",
		"VC_SQRT",
		"KR",
		"GW_KR",
		"INTER_KR",
		"GW_VC",
		"INTER_VC",
		"SCALE",
		"LOADED",
	}
)

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(idx2strs)
}

// String returns the short footer name, e.g. "KR".
func (t Type) String() string {
	if !t.valid() {
		return "NONE"
	}
	return idx2strs[t]
}

// Label returns the long display name, e.g. "Balanced".
func (t Type) Label() string {
	if !t.valid() {
		return "None"
	}
	return idx2strings[t]
}

// Parse maps short and long names to a Type. Unknown names map to NONE,
// reported by ok == false.
func Parse(s string) (t Type, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return NONE, true
	case "coverage", "vc":
		return VC, true
	case "coverage (sqrt)", "vc_sqrt":
		return VC_SQRT, true
	case "balanced", "kr":
		return KR, true
	case "genome-wide balanced", "gw_kr":
		return GW_KR, true
	case "inter balanced", "inter_kr":
		return INTER_KR, true
	case "genome-wide coverage", "gw_vc":
		return GW_VC, true
	case "inter coverage", "inter_vc":
		return INTER_VC, true
	case "balanced++", "scale":
		return SCALE, true
	case "loaded":
		return LOADED, true
	}
	return NONE, false
}
