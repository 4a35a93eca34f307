// Package summary computes genome-wide intra- and inter-chromosomal
// contact totals over a contact-matrix source.
//
// The source is reached only through the interfaces below, so tests can
// substitute synthetic data. FromHiC adapts an open .hic file.
package summary

import (
	"github.com/nimezhu/hicstat/hic"
	"github.com/nimezhu/hicstat/hic/normtype"
)

// Dataset is the read-only view of a contact-matrix file.
type Dataset interface {
	NormalizationMode(name string) normtype.Type
	ResolutionFor(binSize int) (hic.Zoom, error)
	// Chromosomes excludes the whole-genome pseudo chromosome.
	Chromosomes() []hic.Chromosome
	// MatrixFor returns nil, nil when the pair has no matrix.
	MatrixFor(a, b hic.Chromosome) (Matrix, error)
}

type Matrix interface {
	// ZoomData returns nil when the matrix has no data at z.
	ZoomData(z hic.Zoom) ZoomData
}

type ZoomData interface {
	BlocksOverlapping(rowStart, colStart, rowEnd, colEnd int, norm normtype.Type, fillUnderDiagonal bool) ([]Block, error)
}

type Block interface {
	Records() []hic.ContactRecord
}

// FromHiC adapts h to Dataset.
func FromHiC(h *hic.HiC) Dataset {
	return hicDataset{h}
}

type hicDataset struct {
	*hic.HiC
}

func (d hicDataset) MatrixFor(a, b hic.Chromosome) (Matrix, error) {
	m, err := d.HiC.MatrixFor(a, b)
	if err != nil || m == nil {
		return nil, err
	}
	return hicMatrix{m}, nil
}

type hicMatrix struct {
	m *hic.Matrix
}

func (m hicMatrix) ZoomData(z hic.Zoom) ZoomData {
	zd := m.m.ZoomData(z)
	if zd == nil {
		return nil
	}
	return hicZoomData{zd}
}

type hicZoomData struct {
	z *hic.ZoomData
}

func (z hicZoomData) BlocksOverlapping(rowStart, colStart, rowEnd, colEnd int, norm normtype.Type, fillUnderDiagonal bool) ([]Block, error) {
	blocks, err := z.z.BlocksOverlapping(rowStart, colStart, rowEnd, colEnd, norm, fillUnderDiagonal)
	if err != nil {
		return nil, err
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b
	}
	return out, nil
}
