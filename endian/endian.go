// SPDX-License-Identifier: EPL-2.0

package endian

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// Mode selects how multi-byte fields of a file are interpreted.
type Mode uint8

const (
	// Native reads fields in the host byte order.
	Native Mode = iota + 1
	// Swapped reverses every field before interpreting it.
	Swapped
)

var hostLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func (m Mode) String() string {
	switch m {
	case Native:
		return "native"
	case Swapped:
		return "swapped"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Validate reports ErrInvalidMode for anything but Native and Swapped.
func (m Mode) Validate() error {
	if m != Native && m != Swapped {
		return fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
	return nil
}

// ByteOrder returns the binary.ByteOrder that writes fields the way a file
// of this mode stores them.
func (m Mode) ByteOrder() binary.ByteOrder {
	if m == Swapped {
		if hostLittle {
			return binary.BigEndian
		}
		return binary.LittleEndian
	}
	return binary.NativeEndian
}

// Uint16 decodes b[:2], reversing it first in Swapped mode.
func (m Mode) Uint16(b []byte) uint16 {
	v := binary.NativeEndian.Uint16(b)
	if m == Swapped {
		v = SwapUint16(v)
	}
	return v
}

// Uint32 decodes b[:4], reversing it first in Swapped mode.
func (m Mode) Uint32(b []byte) uint32 {
	v := binary.NativeEndian.Uint32(b)
	if m == Swapped {
		v = SwapUint32(v)
	}
	return v
}

// Float32 decodes b[:4] as an IEEE 754 value. The bytes are put in host
// order before the bits are interpreted.
func (m Mode) Float32(b []byte) float32 {
	return math.Float32frombits(m.Uint32(b))
}

// SwapUint16 reverses the two bytes of v.
func SwapUint16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// SwapUint32 reverses the four bytes of v.
func SwapUint32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// Swap16 reverses the two bytes of v.
func Swap16(v int16) int16 {
	return int16(bits.ReverseBytes16(uint16(v)))
}

// Swap32 reverses the four bytes of v.
func Swap32(v int32) int32 {
	return int32(bits.ReverseBytes32(uint32(v)))
}

// SwapFloat32 reverses the four bytes of the IEEE 754 encoding of v.
// The result may be a NaN or denormal; the bit pattern is preserved exactly.
func SwapFloat32(v float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(v)))
}
