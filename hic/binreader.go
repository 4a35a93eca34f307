package hic

import (
	"encoding/binary"
	"io"
)

// binReader reads the little-endian primitives of the .hic container and
// keeps the first error, so a record can be parsed field by field and
// checked once.
type binReader struct {
	r   io.Reader
	err error
}

func (b *binReader) read(v interface{}) {
	if b.err != nil {
		return
	}
	b.err = binary.Read(b.r, binary.LittleEndian, v)
}

func (b *binReader) int32() int32 {
	var v int32
	b.read(&v)
	return v
}

func (b *binReader) int64() int64 {
	var v int64
	b.read(&v)
	return v
}

// intOrLong reads a long when long is set, an int otherwise.
func (b *binReader) intOrLong(long bool) int64 {
	if long {
		return b.int64()
	}
	return int64(b.int32())
}

func (b *binReader) short() int16 {
	var v int16
	b.read(&v)
	return v
}

func (b *binReader) byte() byte {
	var v byte
	b.read(&v)
	return v
}

func (b *binReader) float32() float32 {
	var v float32
	b.read(&v)
	return v
}

func (b *binReader) float64() float64 {
	var v float64
	b.read(&v)
	return v
}

// floatOrDouble reads a float when short is set, a double otherwise.
func (b *binReader) floatOrDouble(short bool) float64 {
	if short {
		return float64(b.float32())
	}
	return b.float64()
}

// string reads a NUL-terminated string.
func (b *binReader) string() string {
	var buf []byte
	for {
		c := b.byte()
		if b.err != nil {
			return ""
		}
		if c == 0 {
			return string(buf)
		}
		buf = append(buf, c)
	}
}
