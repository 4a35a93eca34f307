package hic

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/nimezhu/hicstat/hic/normtype"
)

// Footer holds the master index of the file and the normalization types
// that have vectors stored.
type Footer struct {
	NBytes    int64
	Entry     map[string]Index
	NormTypes map[normtype.Type]bool
}

func (f *Footer) String() string {
	var s bytes.Buffer
	s.WriteString("Footer\n")
	s.WriteString(fmt.Sprintf("\tNBytes\t%d\n", f.NBytes))
	s.WriteString(fmt.Sprintf("\tNEntries\t%d\n", len(f.Entry)))
	s.WriteString("\tNormTypes:")
	for _, t := range f.NormTypeIdx() {
		s.WriteString(" ")
		s.WriteString(t.String())
	}
	s.WriteString("\n")
	return s.String()
}

// NormTypeIdx returns the normalization types in the footer, sorted.
func (f *Footer) NormTypeIdx() []normtype.Type {
	keys := make([]normtype.Type, 0, len(f.NormTypes))
	for k := range f.NormTypes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (e *HiC) readFooter() error {
	e.Lock()
	defer e.Unlock()
	if _, err := e.Seek(e.masterIndexPos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek master index: %v", ErrUnreadableFile, err)
	}
	long := e.Version > 8
	b := &binReader{r: e.Reader}
	e.Footer.NBytes = b.intOrLong(long)
	nEntries := b.int32()
	e.Footer.Entry = make(map[string]Index)
	for i := int32(0); i < nEntries && b.err == nil; i++ {
		key := b.string()
		filePosition := b.int64()
		sizeInBytes := b.int32()
		e.Footer.Entry[key] = Index{filePosition, int64(sizeInBytes)}
	}
	if b.err != nil {
		return fmt.Errorf("%w: master index: %v", ErrUnreadableFile, b.err)
	}

	e.Footer.NormTypes = map[normtype.Type]bool{normtype.NONE: true}
	// The rest of the footer only tells us which normalizations exist. A
	// truncated tail is tolerated.
	if err := e.readNormIndex(b); err != nil {
		logger.Warn().Err(err).Msg("normalization index not read")
	}
	return nil
}

// readNormIndex skips the expected-value sections and collects the types
// listed in the normalization vector index.
func (e *HiC) readNormIndex(b *binReader) error {
	long := e.Version > 8
	e.skipExpectedValues(b, false)
	if b.err != nil {
		return b.err
	}
	e.skipExpectedValues(b, true)
	if b.err == io.EOF || b.err == io.ErrUnexpectedEOF {
		// no normalization vectors stored
		return nil
	}
	if b.err != nil {
		return b.err
	}
	if long && e.normVectorIndexPos > 0 {
		if _, err := e.Seek(e.normVectorIndexPos, io.SeekStart); err != nil {
			return err
		}
	}
	nEntries := b.int32()
	for i := int32(0); i < nEntries && b.err == nil; i++ {
		typeString := b.string()
		b.int32()  // chromosome index
		b.string() // unit
		b.int32()  // resolution
		b.int64()  // file position
		b.intOrLong(long)
		if t, ok := normtype.Parse(typeString); ok && b.err == nil {
			e.Footer.NormTypes[t] = true
		}
	}
	return b.err
}

func (e *HiC) skipExpectedValues(b *binReader, normalized bool) {
	long := e.Version > 8
	n := b.int32()
	for i := int32(0); i < n && b.err == nil; i++ {
		if normalized {
			b.string() // normalization type
		}
		b.string() // unit
		b.int32()  // bin size
		nValues := b.intOrLong(long)
		for j := int64(0); j < nValues && b.err == nil; j++ {
			b.floatOrDouble(long)
		}
		nFactors := b.int32()
		for j := int32(0); j < nFactors && b.err == nil; j++ {
			b.int32() // chromosome index
			b.floatOrDouble(long)
		}
	}
}
