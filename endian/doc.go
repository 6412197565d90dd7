// SPDX-License-Identifier: EPL-2.0

// Package endian provides byte-order reversal for the scalar types stored in
// feature files, and the Mode value that tells readers whether a file was
// written in the host byte order or in the opposite one.
//
// # Converters
//
// Swap16, Swap32 and SwapFloat32 reverse the bytes of a value. They accept
// any bit pattern and applying one twice returns the original value:
//
//	v := endian.Swap32(0x01020304) // 0x04030201
//	endian.Swap32(v)               // 0x01020304
//
// # Modes
//
// Feature files carry no byte-order marker, so the caller states the
// provenance of every file it reads:
//   - Native: the file was written on a host with the same byte order
//   - Swapped: the file was written on a host with the opposite byte order
//
// The zero Mode is invalid and is rejected with ErrInvalidMode.
package endian
