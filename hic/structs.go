package hic

import (
	"fmt"

	"github.com/nimezhu/hicstat/hic/unit"
)

// Chromosome is one entry of the file's chromosome catalog. Index is the
// position in the catalog and is what matrix keys are built from.
type Chromosome struct {
	Index  int
	Name   string
	Length int64
}

type Index struct {
	Position int64
	Size     int64
}

type BlockIndex struct {
	Id       int32
	Position int64
	Size     int32
}

// Zoom identifies one resolution of a matrix.
type Zoom struct {
	Unit    unit.Unit
	BinSize int
}

func (z Zoom) String() string {
	return fmt.Sprintf("%s_%d", z.Unit, z.BinSize)
}

// ContactRecord is a single non-zero cell of a block.
type ContactRecord struct {
	BinX   int32
	BinY   int32
	Counts float32
}
