package summary

import (
	"fmt"
	"sync"

	"github.com/nimezhu/hicstat/hic"
	"github.com/nimezhu/hicstat/hic/normtype"
	"github.com/nimezhu/hicstat/hic/unit"
)

type query struct {
	rowStart, colStart, rowEnd, colEnd int
	norm                               normtype.Type
	fill                               bool
}

type fakeBlock []hic.ContactRecord

func (b fakeBlock) Records() []hic.ContactRecord { return b }

type fakeZoom struct {
	blocks []fakeBlock
	err    error

	mu      sync.Mutex
	queries []query
}

func (z *fakeZoom) BlocksOverlapping(rowStart, colStart, rowEnd, colEnd int, norm normtype.Type, fill bool) ([]Block, error) {
	z.mu.Lock()
	z.queries = append(z.queries, query{rowStart, colStart, rowEnd, colEnd, norm, fill})
	z.mu.Unlock()
	if z.err != nil {
		return nil, z.err
	}
	out := make([]Block, len(z.blocks))
	for i, b := range z.blocks {
		out[i] = b
	}
	return out, nil
}

type fakeMatrix map[hic.Zoom]*fakeZoom

func (m fakeMatrix) ZoomData(z hic.Zoom) ZoomData {
	zd, ok := m[z]
	if !ok {
		return nil
	}
	return zd
}

// fakeDataset serves matrices keyed by chromosome names "a_b" in catalog
// order.
type fakeDataset struct {
	chrs        []hic.Chromosome
	resolutions []int
	matrices    map[string]fakeMatrix
	matrixErr   error

	mu    sync.Mutex
	calls map[string]int
}

func newFakeDataset(chrs ...hic.Chromosome) *fakeDataset {
	return &fakeDataset{
		chrs:        chrs,
		resolutions: []int{testRes},
		matrices:    make(map[string]fakeMatrix),
		calls:       make(map[string]int),
	}
}

const testRes = 500000

var testZoom = hic.Zoom{Unit: unit.BP, BinSize: testRes}

func pairKey(a, b hic.Chromosome) string {
	if a.Index > b.Index {
		a, b = b, a
	}
	return a.Name + "_" + b.Name
}

// set stores blocks for the pair at testZoom.
func (d *fakeDataset) set(a, b hic.Chromosome, blocks ...fakeBlock) *fakeZoom {
	z := &fakeZoom{blocks: blocks}
	d.matrices[pairKey(a, b)] = fakeMatrix{testZoom: z}
	return z
}

func (d *fakeDataset) NormalizationMode(name string) normtype.Type {
	t, _ := normtype.Parse(name)
	return t
}

func (d *fakeDataset) ResolutionFor(binSize int) (hic.Zoom, error) {
	for _, r := range d.resolutions {
		if r == binSize {
			return hic.Zoom{Unit: unit.BP, BinSize: r}, nil
		}
	}
	return hic.Zoom{}, fmt.Errorf("%w: %d", hic.ErrResolutionUnavailable, binSize)
}

func (d *fakeDataset) Chromosomes() []hic.Chromosome {
	return d.chrs
}

func (d *fakeDataset) MatrixFor(a, b hic.Chromosome) (Matrix, error) {
	key := pairKey(a, b)
	d.mu.Lock()
	d.calls[key]++
	d.mu.Unlock()
	if d.matrixErr != nil {
		return nil, d.matrixErr
	}
	m, ok := d.matrices[key]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func rec(v float32) hic.ContactRecord {
	return hic.ContactRecord{Counts: v}
}
