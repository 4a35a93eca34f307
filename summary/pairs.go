package summary

import "fmt"

// Pair holds two chromosome positions, I <= J, in the dataset's catalog
// order.
type Pair struct {
	I, J int
}

// Intra reports whether the pair is a chromosome with itself.
func (p Pair) Intra() bool {
	return p.I == p.J
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// PairIterator yields every unordered pair of n chromosomes once,
// self-pairs included, in row-major order: (0,0), (0,1) ... (0,n-1),
// (1,1) ... (n-1,n-1).
type PairIterator struct {
	n, i, j int
}

func NewPairIterator(n int) *PairIterator {
	return &PairIterator{n: n}
}

// Next returns the next pair, or false when the sequence is exhausted.
func (it *PairIterator) Next() (Pair, bool) {
	if it.i >= it.n {
		return Pair{}, false
	}
	p := Pair{it.i, it.j}
	it.j++
	if it.j >= it.n {
		it.i++
		it.j = it.i
	}
	return p, true
}

// Reset restarts the sequence.
func (it *PairIterator) Reset() {
	it.i, it.j = 0, 0
}

// Len is the total number of pairs, n(n+1)/2.
func (it *PairIterator) Len() int {
	return it.n * (it.n + 1) / 2
}
