package hic

import (
	"fmt"
	"io"
	"sync"
)

const (
	MAGIC      = "HIC"
	minVersion = 6
	maxVersion = 9
)

// DataReader parses the header and footer of a .hic stream. The returned
// handle takes ownership of buf.
func DataReader(buf io.ReadSeeker) (*HiC, error) {
	hic := NewHiC()
	hic.mutex = &sync.Mutex{}
	hic.Reader = buf
	if err := hic.readHeader(); err != nil {
		return nil, err
	}
	if err := hic.readFooter(); err != nil {
		return nil, err
	}
	return hic, nil
}

func (e *HiC) readHeader() error {
	b := &binReader{r: e.Reader}
	if magic := b.string(); b.err != nil || magic != MAGIC {
		return fmt.Errorf("%w: not a HiC format file", ErrUnreadableFile)
	}
	e.Version = b.int32()
	if b.err != nil {
		return fmt.Errorf("%w: version: %v", ErrUnreadableFile, b.err)
	}
	if e.Version < minVersion || e.Version > maxVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, e.Version)
	}
	e.masterIndexPos = b.int64()
	e.Genome = b.string()
	if e.Version > 8 {
		e.normVectorIndexPos = b.int64()
		b.int64() // normalization vector index length
	}

	nAttr := b.int32()
	e.Attr = make(map[string]string)
	for i := int32(0); i < nAttr && b.err == nil; i++ {
		key := b.string()
		value := b.string()
		e.Attr[key] = value
	}

	nChrs := b.int32()
	if b.err != nil {
		return fmt.Errorf("%w: header: %v", ErrUnreadableFile, b.err)
	}
	e.Chr = make([]Chromosome, 0, nChrs)
	for i := 0; i < int(nChrs) && b.err == nil; i++ {
		name := b.string()
		length := b.intOrLong(e.Version > 8)
		e.Chr = append(e.Chr, Chromosome{Index: i, Name: name, Length: length})
	}

	nBpRes := b.int32()
	e.BpRes = make([]int32, 0, nBpRes)
	for i := int32(0); i < nBpRes && b.err == nil; i++ {
		e.BpRes = append(e.BpRes, b.int32())
	}
	nFragRes := b.int32()
	e.FragRes = make([]int32, 0, nFragRes)
	for i := int32(0); i < nFragRes && b.err == nil; i++ {
		e.FragRes = append(e.FragRes, b.int32())
	}
	if b.err != nil {
		return fmt.Errorf("%w: header: %v", ErrUnreadableFile, b.err)
	}
	return nil
}
