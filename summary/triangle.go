package summary

import (
	"fmt"
	"io"
)

// A symmetric matrix is stored as one triangle. Every pair is queried
// without the under-diagonal fill and both totals are then multiplied by
// mirrorFactor. The two constants must change together.
//
// Diagonal cells of self-pairs are doubled as well, so contacts within a
// single bin are counted twice.
const (
	fillUnderDiagonal = false
	mirrorFactor      = 2
)

// Totals are the running intra- and inter-chromosomal sums. It is a value:
// Add and Merge return new Totals, and Merge is associative and
// commutative.
type Totals struct {
	Intra int64
	Inter int64
}

// Add routes the sum of one pair.
func (t Totals) Add(p Pair, sum int64) Totals {
	if p.Intra() {
		t.Intra += sum
	} else {
		t.Inter += sum
	}
	return t
}

func (t Totals) Merge(o Totals) Totals {
	return Totals{t.Intra + o.Intra, t.Inter + o.Inter}
}

// Report restores the omitted triangle.
func (t Totals) Report() Totals {
	return Totals{t.Intra * mirrorFactor, t.Inter * mirrorFactor}
}

// WriteReport prints reported totals, one line each.
func WriteReport(w io.Writer, t Totals) error {
	if _, err := fmt.Fprintf(w, "Total number of Intra-chromosomal contacts is %d\n", t.Intra); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total number of Inter-chromosomal contacts is %d\n", t.Inter)
	return err
}
