package hic

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"math"
)

// Block is a decoded, zlib-compressed tile of a ZoomData.
type Block struct {
	Number  int
	records []ContactRecord
}

// Records returns the contact records of the block.
func (b *Block) Records() []ContactRecord {
	return b.records
}

func (b *Block) String() string {
	return fmt.Sprintf("Block %d (%d records)", b.Number, len(b.records))
}

const (
	blockSparse = 1
	blockDense  = 2
	// shortEmpty marks an empty cell in dense blocks with short counts.
	shortEmpty = math.MinInt16
)

func (e *HiC) readBlock(v BlockIndex) (*Block, error) {
	data, err := e.readAt(v.Position, int(v.Size))
	if err != nil {
		return nil, err
	}
	records, err := decodeBlock(data, e.Version)
	if err != nil {
		return nil, err
	}
	return &Block{Number: int(v.Id), records: records}, nil
}

func decodeBlock(data []byte, version int32) ([]ContactRecord, error) {
	c, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer c.Close()
	r := &binReader{r: c}
	nPositions := r.int32()
	if r.err != nil {
		return nil, r.err
	}
	if nPositions < 0 {
		return nil, fmt.Errorf("negative record count %d", nPositions)
	}
	pos := make([]ContactRecord, 0, nPositions)

	if version < 7 {
		for i := int32(0); i < nPositions && r.err == nil; i++ {
			x := r.int32()
			y := r.int32()
			pos = append(pos, ContactRecord{x, y, r.float32()})
		}
		return pos, r.err
	}

	binXOffset := r.int32()
	binYOffset := r.int32()
	useShort := r.byte() == 0
	useShortBinX, useShortBinY := true, true
	if version > 8 {
		useShortBinX = r.byte() == 0
		useShortBinY = r.byte() == 0
	}
	t := r.byte()
	if r.err != nil {
		return nil, r.err
	}
	counts := func() float32 {
		if useShort {
			return float32(r.short())
		}
		return r.float32()
	}
	bin := func(short bool) int32 {
		if short {
			return int32(r.short())
		}
		return r.int32()
	}

	switch t {
	case blockSparse:
		rowCount := bin(useShortBinY)
		for i := int32(0); i < rowCount && r.err == nil; i++ {
			y := binYOffset + bin(useShortBinY)
			colCount := bin(useShortBinX)
			for j := int32(0); j < colCount && r.err == nil; j++ {
				x := binXOffset + bin(useShortBinX)
				pos = append(pos, ContactRecord{x, y, counts()})
			}
		}
	case blockDense:
		nPts := r.int32()
		w := int32(r.short())
		if r.err == nil && w <= 0 && nPts > 0 {
			return nil, fmt.Errorf("dense block width %d", w)
		}
		for i := int32(0); i < nPts && r.err == nil; i++ {
			row := i / w
			col := i - row*w
			x := binXOffset + col
			y := binYOffset + row
			if useShort {
				v := r.short()
				if v != shortEmpty {
					pos = append(pos, ContactRecord{x, y, float32(v)})
				}
			} else {
				v := r.float32()
				if !math.IsNaN(float64(v)) {
					pos = append(pos, ContactRecord{x, y, v})
				}
			}
		}
	default:
		return nil, fmt.Errorf("unknown block type %d", t)
	}
	if r.err != nil && r.err != io.EOF {
		return nil, r.err
	}
	if r.err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if t == blockSparse && int32(len(pos)) != nPositions {
		logger.Warn().Int32("declared", nPositions).Int("decoded", len(pos)).Msg("block record count mismatch")
	}
	return pos, nil
}
