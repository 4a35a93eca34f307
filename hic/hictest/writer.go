// Package hictest builds small .hic files in memory for tests.
//
// Files are written as version 8 containers: header, zlib-compressed sparse
// blocks, matrix headers, and a footer with the master index, empty
// expected-value sections and a normalization vector index.
package hictest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
)

// Chr is a catalog entry. Put the "All" pseudo chromosome first to mimic
// real files.
type Chr struct {
	Name   string
	Length int32
}

type Record struct {
	BinX   int32
	BinY   int32
	Counts float32
}

// Zoom is one resolution of a matrix. Blocks maps block numbers to their
// records.
type Zoom struct {
	Unit             string
	BinSize          int32
	BlockBinCount    int32
	BlockColumnCount int32
	Blocks           map[int32][]Record
}

// Matrix is the body stored under key "Chr1_Chr2".
type Matrix struct {
	Chr1  int32
	Chr2  int32
	Zooms []Zoom
}

type File struct {
	Genome      string
	Chromosomes []Chr
	BpRes       []int32
	FragRes     []int32
	Matrices    []Matrix
	// NormTypes are listed in the normalization vector index with empty
	// vectors.
	NormTypes []string
}

type writer struct {
	buf bytes.Buffer
}

func (w *writer) put(v interface{}) {
	binary.Write(&w.buf, binary.LittleEndian, v)
}

func (w *writer) str(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte(0)
}

func (w *writer) pos() int64 {
	return int64(w.buf.Len())
}

type entry struct {
	key  string
	pos  int64
	size int32
}

// Bytes encodes f.
func (f File) Bytes() []byte {
	w := &writer{}
	w.str("HIC")
	w.put(int32(8))
	masterPatch := w.pos()
	w.put(int64(0))
	w.str(f.Genome)
	w.put(int32(0)) // attributes
	w.put(int32(len(f.Chromosomes)))
	for _, c := range f.Chromosomes {
		w.str(c.Name)
		w.put(c.Length)
	}
	w.put(int32(len(f.BpRes)))
	for _, r := range f.BpRes {
		w.put(r)
	}
	w.put(int32(len(f.FragRes)))
	for _, r := range f.FragRes {
		w.put(r)
	}

	var entries []entry
	for _, m := range f.Matrices {
		entries = append(entries, w.matrix(m))
	}

	master := w.pos()
	w.put(int32(0)) // nBytes, unused by readers
	w.put(int32(len(entries)))
	for _, e := range entries {
		w.str(e.key)
		w.put(e.pos)
		w.put(e.size)
	}
	w.put(int32(0)) // expected values
	w.put(int32(0)) // normalized expected values
	w.put(int32(len(f.NormTypes)))
	for _, t := range f.NormTypes {
		w.str(t)
		w.put(int32(1))
		w.str("BP")
		if len(f.BpRes) > 0 {
			w.put(f.BpRes[0])
		} else {
			w.put(int32(0))
		}
		w.put(int64(0))
		w.put(int32(0))
	}

	out := w.buf.Bytes()
	binary.LittleEndian.PutUint64(out[masterPatch:], uint64(master))
	return out
}

type blockIndex struct {
	id   int32
	pos  int64
	size int32
}

func (w *writer) matrix(m Matrix) entry {
	blocks := make([][]blockIndex, len(m.Zooms))
	for i, z := range m.Zooms {
		ids := make([]int, 0, len(z.Blocks))
		for id := range z.Blocks {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		for _, id := range ids {
			data := EncodeBlock(z.Blocks[int32(id)])
			blocks[i] = append(blocks[i], blockIndex{int32(id), w.pos(), int32(len(data))})
			w.buf.Write(data)
		}
	}
	start := w.pos()
	w.put(m.Chr1)
	w.put(m.Chr2)
	w.put(int32(len(m.Zooms)))
	for i, z := range m.Zooms {
		unit := z.Unit
		if unit == "" {
			unit = "BP"
		}
		w.str(unit)
		w.put(int32(i))
		w.put(float32(0)) // sum counts
		w.put(float32(0)) // occupied cell count
		w.put(float32(0)) // std dev
		w.put(float32(0)) // 95th percentile
		w.put(z.BinSize)
		w.put(z.BlockBinCount)
		w.put(z.BlockColumnCount)
		w.put(int32(len(blocks[i])))
		for _, b := range blocks[i] {
			w.put(b.id)
			w.put(b.pos)
			w.put(b.size)
		}
	}
	return entry{fmt.Sprintf("%d_%d", m.Chr1, m.Chr2), start, int32(w.pos() - start)}
}

// EncodeBlock compresses records as a v8 sparse block with float counts.
func EncodeBlock(records []Record) []byte {
	rows := make(map[int32][]Record)
	var ys []int
	for _, r := range records {
		if _, ok := rows[r.BinY]; !ok {
			ys = append(ys, int(r.BinY))
		}
		rows[r.BinY] = append(rows[r.BinY], r)
	}
	sort.Ints(ys)

	raw := &writer{}
	raw.put(int32(len(records)))
	raw.put(int32(0)) // binXOffset
	raw.put(int32(0)) // binYOffset
	raw.put(byte(1))  // float counts
	raw.put(byte(1))  // sparse
	raw.put(int16(len(ys)))
	for _, y := range ys {
		raw.put(int16(y))
		raw.put(int16(len(rows[int32(y)])))
		for _, r := range rows[int32(y)] {
			raw.put(int16(r.BinX))
			raw.put(r.Counts)
		}
	}

	var out bytes.Buffer
	z := zlib.NewWriter(&out)
	z.Write(raw.buf.Bytes())
	z.Close()
	return out.Bytes()
}

// WriteFile writes f to path.
func WriteFile(path string, f File) error {
	return os.WriteFile(path, f.Bytes(), 0o644)
}
