// Package hexdump renders memory reads for the probe tool: offset column, hex
// bytes split at mid-line, the ASCII column and any 32-bit values that point
// into a mapped region.
package hexdump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode"

	"stattracker/coloransi"
	"stattracker/process/memory_map"
)

var (
	offsetColor  = coloransi.RGB(0, 170, 170)
	hexColor     = coloransi.RGB(0, 200, 0)
	zeroColor    = coloransi.RGB(110, 110, 110)
	badCharColor = coloransi.RGB(200, 0, 0)
	pointerColor = coloransi.RGB(230, 200, 0)
)

const bytesPerLine = 16

type Options struct {
	// StartAddress labels the first byte
	StartAddress uint64

	// MemoryMap, when set, lists 32-bit pointers found on each line
	MemoryMap []memory_map.MemoryMapItem

	// Plain disables colors
	Plain bool
}

// Dump renders data
func Dump(data []byte, options Options) string {
	var buffer bytes.Buffer
	DumpToWriter(&buffer, data, options)
	return buffer.String()
}

func DumpToWriter(writer io.Writer, data []byte, options Options) {
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		formatLine(writer, data[offset:end], options.StartAddress+uint64(offset), options)
	}
}

// format:
//
//	00401000  00 01 02 03 04 05 06 07 | 08 09 0a 0b 0c 0d 0e 0f | ........ ........ | 0x8a0000
func formatLine(writer io.Writer, data []byte, addr uint64, options Options) {
	paint := func(c coloransi.ColorCode, s string) string {
		if options.Plain {
			return s
		}
		return coloransi.Foreground(c, s)
	}

	fmt.Fprint(writer, paint(offsetColor, fmt.Sprintf("%08x", addr)), "  ")

	for i := 0; i < bytesPerLine; i++ {
		if i == bytesPerLine/2 {
			fmt.Fprint(writer, "| ")
		}
		switch {
		case i >= len(data):
			fmt.Fprint(writer, "   ")
		case data[i] == 0:
			fmt.Fprint(writer, paint(zeroColor, "00"), " ")
		default:
			fmt.Fprint(writer, paint(hexColor, fmt.Sprintf("%02x", data[i])), " ")
		}
	}

	fmt.Fprint(writer, "| ")
	for i, b := range data {
		if i == bytesPerLine/2 {
			fmt.Fprint(writer, " ")
		}
		switch c := rune(b); {
		case b == 0:
			fmt.Fprint(writer, paint(zeroColor, "."))
		case c > unicode.MaxASCII || !unicode.IsPrint(c):
			fmt.Fprint(writer, paint(badCharColor, "."))
		default:
			fmt.Fprint(writer, string(c))
		}
	}

	if pointers := Pointers(data, options.MemoryMap); len(pointers) > 0 {
		fmt.Fprint(writer, strings.Repeat(" ", bytesPerLine-len(data)), " |")
		for _, ptr := range pointers {
			fmt.Fprint(writer, " ", paint(pointerColor, fmt.Sprintf("%#x", ptr)))
		}
	}

	fmt.Fprintln(writer)
}

// Pointers returns the aligned 32-bit little-endian values in data that fall
// inside a readable region of mm
func Pointers(data []byte, mm []memory_map.MemoryMapItem) []uint32 {
	if len(mm) == 0 {
		return nil
	}
	var out []uint32
	for i := 0; i+4 <= len(data); i += 4 {
		ptr := binary.LittleEndian.Uint32(data[i:])
		if item := memory_map.Find(uint64(ptr), mm); item != nil && item.IsReadable() {
			out = append(out, ptr)
		}
	}
	return out
}
