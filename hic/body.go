package hic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nimezhu/hicstat/hic/unit"
)

// Matrix is the body of one chromosome pair: one ZoomData per resolution.
type Matrix struct {
	Chr1Idx int32
	Chr2Idx int32
	Mats    []*ZoomData
}

func (b *Matrix) String() string {
	var s bytes.Buffer
	s.WriteString("Body\n")
	s.WriteString(fmt.Sprintf("\tchr1Idx\t%d\n", b.Chr1Idx))
	s.WriteString(fmt.Sprintf("\tchr2Idx\t%d\n", b.Chr2Idx))
	s.WriteString(fmt.Sprintf("\tnResolutions\t%d\n", len(b.Mats)))
	return s.String()
}

// ZoomData returns the zoom level matching z, or nil if the matrix has
// none at that resolution.
func (b *Matrix) ZoomData(z Zoom) *ZoomData {
	for _, m := range b.Mats {
		if m.Zoom() == z {
			return m
		}
	}
	return nil
}

// loadMatrix reads the matrix header stored under key. A key missing from
// the master index is not an error.
func (e *HiC) loadMatrix(key string) (*Matrix, error) {
	v, ok := e.Footer.Entry[key]
	if !ok {
		return nil, nil
	}
	e.Lock()
	defer e.Unlock()
	if _, err := e.Seek(v.Position, io.SeekStart); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", key, err)
	}
	r := &binReader{r: e.Reader}
	m := &Matrix{}
	m.Chr1Idx = r.int32()
	m.Chr2Idx = r.int32()
	nRes := r.int32()
	if r.err != nil {
		return nil, fmt.Errorf("matrix %s: %w", key, r.err)
	}
	m.Mats = make([]*ZoomData, 0, nRes)
	for i := int32(0); i < nRes && r.err == nil; i++ {
		z := &ZoomData{reader: e, version: e.Version, intra: m.Chr1Idx == m.Chr2Idx}
		z.Unit = r.string()
		z.ResIdx = r.int32()
		z.SumCounts = r.float32()
		r.float32() // occupied cell count
		r.float32() // std dev
		r.float32() // 95th percentile
		z.BinSize = r.int32()
		z.BlockBinCount = r.int32()
		z.BlockColumnCount = r.int32()
		blockCount := r.int32()
		z.BlockIndexes = make(map[int]BlockIndex, blockCount)
		for j := int32(0); j < blockCount && r.err == nil; j++ {
			blockID := r.int32()
			blockPosition := r.int64()
			blockSize := r.int32()
			z.BlockIndexes[int(blockID)] = BlockIndex{blockID, blockPosition, blockSize}
		}
		z.unit = unit.Parse(z.Unit)
		m.Mats = append(m.Mats, z)
	}
	if r.err != nil {
		return nil, fmt.Errorf("matrix %s: %w", key, r.err)
	}
	return m, nil
}
