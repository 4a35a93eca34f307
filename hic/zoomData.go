package hic

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/nimezhu/hicstat/hic/normtype"
	"github.com/nimezhu/hicstat/hic/unit"
)

// ZoomData is one resolution of a Matrix: a grid of blocks, each
// BlockBinCount bins wide, addressed by block number.
type ZoomData struct {
	Unit             string
	ResIdx           int32
	SumCounts        float32
	BinSize          int32
	BlockBinCount    int32
	BlockColumnCount int32
	BlockIndexes     map[int]BlockIndex
	unit             unit.Unit
	version          int32
	intra            bool
	reader           *HiC
}

func (b *ZoomData) Zoom() Zoom {
	return Zoom{Unit: b.unit, BinSize: int(b.BinSize)}
}

func (b *ZoomData) String() string {
	var s bytes.Buffer
	s.WriteString("ZoomData\n")
	s.WriteString(fmt.Sprintf("\tunit\t%s\n", b.Unit))
	s.WriteString(fmt.Sprintf("\tresIdx\t%d\n", b.ResIdx))
	s.WriteString(fmt.Sprintf("\tsumCounts\t%.2f\n", b.SumCounts))
	s.WriteString(fmt.Sprintf("\tbinSize\t%d\n", b.BinSize))
	s.WriteString(fmt.Sprintf("\tblockBinCount\t%d\n", b.BlockBinCount))
	s.WriteString(fmt.Sprintf("\tblockColumnCount\t%d\n", b.BlockColumnCount))
	s.WriteString(fmt.Sprintf("\tblockCount\t%d\n", len(b.BlockIndexes)))
	return s.String()
}

// coordsToBlockIndexes lists the stored blocks that may hold bins of the
// region [rowStart, rowEnd] x [colStart, colEnd]. Rows are bins of the
// first chromosome (binX), columns bins of the second (binY).
func (b *ZoomData) coordsToBlockIndexes(rowStart, colStart, rowEnd, colEnd int) []int {
	if b.version > 8 && b.intra {
		// v9 intra matrices number their blocks by distance to the
		// diagonal; every block is a candidate and records are filtered.
		return b.allBlockIndexes()
	}
	blockBinCount := int(b.BlockBinCount)
	if blockBinCount <= 0 {
		return b.allBlockIndexes()
	}
	set := make(map[int]bool)
	add := func(x0, y0, x1, y1 int) {
		for r := y0 / blockBinCount; r <= y1/blockBinCount; r++ {
			for c := x0 / blockBinCount; c <= x1/blockBinCount; c++ {
				idx := r*int(b.BlockColumnCount) + c
				if _, ok := b.BlockIndexes[idx]; ok {
					set[idx] = true
				}
			}
		}
	}
	add(rowStart, colStart, rowEnd, colEnd)
	if b.intra {
		add(colStart, rowStart, colEnd, rowEnd)
	}
	arr := make([]int, 0, len(set))
	for idx := range set {
		arr = append(arr, idx)
	}
	sort.Ints(arr)
	return arr
}

func (b *ZoomData) allBlockIndexes() []int {
	arr := make([]int, 0, len(b.BlockIndexes))
	for idx := range b.BlockIndexes {
		arr = append(arr, idx)
	}
	sort.Ints(arr)
	return arr
}

// BlocksOverlapping loads the blocks overlapping the region, keeping only
// the records inside it. Bounds are inclusive bin indexes. Intra-matrices
// are stored as one triangle; fillUnderDiagonal adds the mirrored records.
// Only raw counts are served.
func (b *ZoomData) BlocksOverlapping(rowStart, colStart, rowEnd, colEnd int, norm normtype.Type, fillUnderDiagonal bool) ([]*Block, error) {
	if norm != normtype.NONE {
		return nil, fmt.Errorf("%w: %s", ErrNormalizationUnsupported, norm)
	}
	inRegion := func(x, y int32) bool {
		return int(x) >= rowStart && int(x) <= rowEnd && int(y) >= colStart && int(y) <= colEnd
	}
	indexes := b.coordsToBlockIndexes(rowStart, colStart, rowEnd, colEnd)
	blocks := make([]*Block, 0, len(indexes))
	for _, idx := range indexes {
		v := b.BlockIndexes[idx]
		block, err := b.reader.readBlock(v)
		if err != nil {
			return nil, fmt.Errorf("block %d at %d: %w", v.Id, v.Position, err)
		}
		kept := block.records[:0]
		var mirrored []ContactRecord
		for _, r := range block.records {
			if inRegion(r.BinX, r.BinY) {
				kept = append(kept, r)
			}
			if fillUnderDiagonal && b.intra && r.BinX != r.BinY && inRegion(r.BinY, r.BinX) {
				mirrored = append(mirrored, ContactRecord{BinX: r.BinY, BinY: r.BinX, Counts: r.Counts})
			}
		}
		block.records = append(kept, mirrored...)
		blocks = append(blocks, block)
	}
	return blocks, nil
}
