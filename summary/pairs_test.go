package summary

import (
	"reflect"
	"testing"
)

func collect(it *PairIterator) []Pair {
	var out []Pair
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p)
	}
	return out
}

func TestPairIterator(t *testing.T) {
	tests := []struct {
		n    int
		want []Pair
	}{
		{0, nil},
		{1, []Pair{{0, 0}}},
		{3, []Pair{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}, {2, 2}}},
	}
	for _, tt := range tests {
		it := NewPairIterator(tt.n)
		got := collect(it)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("n=%d: got %v, want %v", tt.n, got, tt.want)
		}
		if it.Len() != len(tt.want) {
			t.Errorf("n=%d: Len() = %d, want %d", tt.n, it.Len(), len(tt.want))
		}
		if _, ok := it.Next(); ok {
			t.Errorf("n=%d: Next after end should be false", tt.n)
		}
	}
}

func TestPairIteratorReset(t *testing.T) {
	it := NewPairIterator(4)
	first := collect(it)
	it.Reset()
	second := collect(it)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart differs: %v vs %v", first, second)
	}
	seen := make(map[Pair]bool)
	for _, p := range first {
		if p.I > p.J {
			t.Errorf("pair %v has I > J", p)
		}
		if seen[p] {
			t.Errorf("pair %v repeated", p)
		}
		seen[p] = true
	}
	if len(seen) != 10 {
		t.Errorf("got %d pairs, want 10", len(seen))
	}
}
