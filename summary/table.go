package summary

import (
	"bytes"
	"fmt"
)

// FormatTable renders the per-pair sums as a tab separated matrix with a
// header row of chromosome names.
func FormatTable(res Result) string {
	var buffer bytes.Buffer
	if res.Table == nil {
		return ""
	}
	for _, c := range res.Chromosomes {
		buffer.WriteString("\t")
		buffer.WriteString(c.Name)
	}
	buffer.WriteString("\n")
	r, c := res.Table.Dims()
	for i := 0; i < r; i++ {
		buffer.WriteString(res.Chromosomes[i].Name)
		for j := 0; j < c; j++ {
			buffer.WriteString(fmt.Sprintf("\t%.0f", res.Table.At(i, j)))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}
