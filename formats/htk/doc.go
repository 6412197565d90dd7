// SPDX-License-Identifier: EPL-2.0

// Package htk reads and writes HTK-style acoustic feature files.
//
// # File Format
//
// A feature file is a 12-byte header followed by the frames:
//
//	offset  size  field
//	0       4     sample count (frames)
//	4       4     sample period, 100ns units
//	8       2     frame width in bytes (dimension * 4)
//	10      2     parameter kind, not interpreted
//	12      ...   frames of float32 values, one after another
//
// The format has no byte-order marker. Files written on a host of the other
// byte order are read with endian.Swapped, everything else with
// endian.Native. The mode is a required argument everywhere.
//
// # Reading
//
//	m, err := htk.ReadFile("query.fea", endian.Native)
//	dim, frames := m.Dims()
//
// ReadSegment returns a window of frames without decoding the frames before
// it, which is how spoken-term detection extracts a match:
//
//	m, err := htk.ReadSegment("doc.fea", endian.Native, 150, 40)
//
// SamplePeriod reads the period field only.
//
// # Compressed Files
//
// Paths ending in .gz, .zst (or .zstd) and .lz4 are decompressed while
// reading and compressed by WriteFile. Segments of compressed files are
// reached by decoding and discarding the skipped frames.
//
// # Error Handling
//
// The package defines these errors:
//   - ErrTruncatedHeader: fewer than 10 header bytes
//   - ErrMalformedHeader: negative sample count, or a frame width that is not
//     a positive multiple of 4
//   - ErrTruncatedBody: fewer frames on disk than declared
//   - ErrOutOfRange: a segment outside [0, sample count)
//
// Open failures wrap the *fs.PathError from the os package, so
// errors.Is(err, fs.ErrNotExist) and fs.ErrPermission work as usual.
// No function returns a partially filled matrix.
package htk
