package hic

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func TestBinReader(t *testing.T) {
	var raw bytes.Buffer
	put := func(v interface{}) { binary.Write(&raw, binary.LittleEndian, v) }
	put(int32(-7))
	put(int64(1) << 40)
	put(int16(-2))
	put(byte(9))
	put(float32(1.5))
	put(float64(-0.25))
	raw.WriteString("hg19\x00")
	raw.WriteString("\x00")

	b := &binReader{r: &raw}
	if v := b.int32(); v != -7 {
		t.Errorf("int32 = %d", v)
	}
	if v := b.intOrLong(true); v != 1<<40 {
		t.Errorf("long = %d", v)
	}
	if v := b.short(); v != -2 {
		t.Errorf("short = %d", v)
	}
	if v := b.byte(); v != 9 {
		t.Errorf("byte = %d", v)
	}
	if v := b.floatOrDouble(true); v != 1.5 {
		t.Errorf("float = %v", v)
	}
	if v := b.floatOrDouble(false); v != -0.25 {
		t.Errorf("double = %v", v)
	}
	if v := b.string(); v != "hg19" {
		t.Errorf("string = %q", v)
	}
	if v := b.string(); v != "" {
		t.Errorf("empty string = %q", v)
	}
	if b.err != nil {
		t.Fatalf("err = %v", b.err)
	}

	if v := b.int32(); v != 0 || b.err != io.EOF {
		t.Errorf("past end: %d, %v", v, b.err)
	}
	if v := b.string(); v != "" || b.err != io.EOF {
		t.Errorf("sticky error lost: %q, %v", v, b.err)
	}
}

func TestBinReaderUnterminatedString(t *testing.T) {
	b := &binReader{r: bytes.NewReader([]byte("chr1"))}
	if v := b.string(); v != "" || b.err != io.EOF {
		t.Errorf("string = %q, err = %v", v, b.err)
	}
}
