package normtype

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Type
		wantOK bool
	}{
		{"NONE", NONE, true},
		{"none", NONE, true},
		{"KR", KR, true},
		{"Balanced", KR, true},
		{"Coverage (Sqrt)", VC_SQRT, true},
		{"SCALE", SCALE, true},
		{" inter_vc ", INTER_VC, true},
		{"bogus", NONE, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for i := NONE; i <= LOADED; i++ {
		got, ok := Parse(i.String())
		if !ok || got != i {
			t.Errorf("Parse(%q) = %v, %v", i.String(), got, ok)
		}
		if got, _ := Parse(i.Label()); got != i {
			t.Errorf("Parse(%q) = %v, want %v", i.Label(), got, i)
		}
	}
	if Type(99).String() != "NONE" {
		t.Errorf("out of range type should print NONE")
	}
}
