package bitfield

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const rowSize = 4

// String renders the buffer as hex, in groups of two bytes, e.g. "a5a5 a5".
func (bf *BitField) String() string {
	var sb strings.Builder
	for i, b := range bf.bytes {
		if i > 0 && i%2 == 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", b)
	}
	return sb.String()
}

// DebugString renders the buffer as a table of 4-byte rows, showing each
// row's offset along with its binary and hex representations.
func (bf *BitField) DebugString() string {
	var sb strings.Builder
	bf.WriteTable(&sb)
	return sb.String()
}

// WriteTable writes the DebugString table to w.
func (bf *BitField) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Offset", "Binary", "Hex"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for off := 0; off < len(bf.bytes); off += rowSize {
		end := off + rowSize
		if end > len(bf.bytes) {
			end = len(bf.bytes)
		}
		table.Append(row(off, bf.bytes[off:end]))
	}

	table.Render()
}

func row(off int, b []byte) []string {
	bin := make([]string, len(b))
	var hex strings.Builder
	for i, v := range b {
		bin[i] = fmt.Sprintf("%08b", v)
		if i > 0 && i%2 == 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02x", v)
	}

	return []string{fmt.Sprintf("%06d", off), strings.Join(bin, " "), hex.String()}
}
