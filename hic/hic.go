package hic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/nimezhu/hicstat/hic/normtype"
	"github.com/nimezhu/hicstat/hic/unit"
)

// AllChromosomes is the name of the whole-genome pseudo chromosome that
// .hic files keep at catalog index 0.
const AllChromosomes = "All"

// HiC is an open .hic file. Reads through it are serialized, so one handle
// may be shared by several goroutines.
type HiC struct {
	Reader             io.ReadSeeker
	mutex              *sync.Mutex
	Version            int32
	masterIndexPos     int64
	normVectorIndexPos int64
	Genome             string
	Attr               map[string]string
	Chr                []Chromosome
	BpRes              []int32
	FragRes            []int32
	Footer             Footer
	matrices           map[string]*Matrix
	matricesMux        sync.Mutex
}

func NewHiC() *HiC {
	return &HiC{matrices: make(map[string]*Matrix)}
}

// Open opens a local .hic file and parses its header and footer.
func Open(uri string) (*HiC, error) {
	r, err := os.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableFile, uri, err)
	}
	h, err := DataReader(r)
	if err != nil {
		closeReader(r)
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	logger.Debug().Str("uri", uri).Int32("version", h.Version).Str("genome", h.Genome).
		Int("chromosomes", len(h.Chr)).Msg("opened")
	return h, nil
}

func closeReader(r io.Reader) error {
	if c, ok := r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Close releases the underlying reader.
func (e *HiC) Close() error {
	e.Lock()
	defer e.Unlock()
	return closeReader(e.Reader)
}

func (e *HiC) Lock() {
	e.mutex.Lock()
}
func (e *HiC) Unlock() {
	e.mutex.Unlock()
}
func (e *HiC) Read(p []byte) (int, error) {
	return e.Reader.Read(p)
}
func (e *HiC) Seek(offset int64, w int) (int64, error) {
	return e.Reader.Seek(offset, w)
}

// readAt reads size bytes at position while holding the lock.
func (e *HiC) readAt(position int64, size int) ([]byte, error) {
	e.Lock()
	defer e.Unlock()
	if _, err := e.Seek(position, io.SeekStart); err != nil {
		return nil, err
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(e.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Chromosomes returns the catalog in file order without the whole-genome
// pseudo chromosome.
func (e *HiC) Chromosomes() []Chromosome {
	chrs := make([]Chromosome, 0, len(e.Chr))
	for _, c := range e.Chr {
		if strings.EqualFold(c.Name, AllChromosomes) {
			continue
		}
		chrs = append(chrs, c)
	}
	return chrs
}

// ResolutionFor returns the base-pair zoom with the given bin size.
func (e *HiC) ResolutionFor(binSize int) (Zoom, error) {
	for _, v := range e.BpRes {
		if int(v) == binSize {
			return Zoom{Unit: unit.BP, BinSize: binSize}, nil
		}
	}
	return Zoom{}, fmt.Errorf("%w: %d bp (available %v)", ErrResolutionUnavailable, binSize, e.BpRes)
}

// NormalizationMode maps a name such as "NONE" or "KR" to its type.
// Unknown names fall back to NONE.
func (e *HiC) NormalizationMode(name string) normtype.Type {
	t, ok := normtype.Parse(name)
	if !ok {
		logger.Warn().Str("name", name).Msg("unknown normalization, using NONE")
	}
	return t
}

// MatrixFor returns the matrix of the two chromosomes, or nil when the file
// stores none for the pair.
func (e *HiC) MatrixFor(a, b Chromosome) (*Matrix, error) {
	i, j := a.Index, b.Index
	if i > j {
		i, j = j, i
	}
	key := fmt.Sprintf("%d_%d", i, j)
	e.matricesMux.Lock()
	m, ok := e.matrices[key]
	e.matricesMux.Unlock()
	if ok {
		return m, nil
	}
	m, err := e.loadMatrix(key)
	if err != nil || m == nil {
		return nil, err
	}
	e.matricesMux.Lock()
	e.matrices[key] = m
	e.matricesMux.Unlock()
	return m, nil
}

func (e *HiC) String() string {
	var s bytes.Buffer
	s.WriteString(fmt.Sprintf("Version: %d\n", e.Version))
	s.WriteString(fmt.Sprintf("Genome: %s\n", e.Genome))
	s.WriteString(fmt.Sprintf("Chromosome Number: %d\n", len(e.Chr)))
	for _, c := range e.Chr {
		s.WriteString(fmt.Sprintf("\t%s\t%d\n", c.Name, c.Length))
	}
	s.WriteString(fmt.Sprintf("Basepair Resolutions Number : %d\n", len(e.BpRes)))
	s.WriteString(fmt.Sprintln(e.BpRes))
	s.WriteString(fmt.Sprintf("Fragment Resolutions Number : %d\n", len(e.FragRes)))
	s.WriteString(fmt.Sprintln(e.FragRes))
	s.WriteString(e.Footer.String())
	return s.String()
}
