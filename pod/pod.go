// Package pod decodes raw bytes read from a target process into plain values.
//
// Every decoder takes the (data, err) pair a read returns, so a chain read can
// be decoded in one expression:
//
//	ticks, err := pod.Uint32(process.ReadPointerChain(proc, base, 4, offsets...))
package pod

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrMalformed is returned when the bytes cannot be decoded as the requested type
var ErrMalformed = errors.New("malformed data")

// fixed checks the pass-through error and the exact width shared by the numeric decoders
func fixed(data []byte, err error, width int, name string) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if len(data) != width {
		return nil, fmt.Errorf("%s: got %d bytes, want %d: %w", name, len(data), width, ErrMalformed)
	}
	return data, nil
}

// Uint32 decodes exactly 4 little-endian bytes
func Uint32(data []byte, err error) (uint32, error) {
	raw, err := fixed(data, err, 4, "uint32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

// Float32 decodes exactly 4 little-endian bytes as an IEEE-754 single
func Float32(data []byte, err error) (float32, error) {
	raw, err := fixed(data, err, 4, "float32")
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(raw)), nil
}

// String decodes data as UTF-8 text. The whole input is kept, NUL bytes included.
func String(data []byte, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("string: invalid UTF-8 % x: %w", data, ErrMalformed)
	}
	return string(data), nil
}
