// Package hicstat computes genome-wide contact statistics from .hic files.
// The reader lives in package hic and the aggregation in package summary.
package hicstat

import (
	"encoding/binary"
	"io"
	"os"
)

const BIGWIG_MAGIC = 0x888FFC26
const BIGBED_MAGIC = 0x8789F2EB
const HIC_MAGIC = 0x00434948

// Magic names the format of uri from its first four bytes: "hic",
// "bigwig", "bigbed" or "unknown".
func Magic(uri string) (string, error) {
	f, err := os.Open(uri)
	if err != nil {
		return "unknown", err
	}
	defer f.Close()
	return magicOf(f)
}

func magicOf(r io.Reader) (string, error) {
	p := make([]byte, 4)
	if _, err := io.ReadFull(r, p); err != nil {
		return "unknown", err
	}
	switch binary.LittleEndian.Uint32(p) {
	case BIGBED_MAGIC:
		return "bigbed", nil
	case BIGWIG_MAGIC:
		return "bigwig", nil
	case HIC_MAGIC:
		return "hic", nil
	}
	return "unknown", nil
}
