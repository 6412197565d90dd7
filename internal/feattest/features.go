// SPDX-License-Identifier: EPL-2.0

// Package feattest builds feature files, text inputs and audio sources for
// tests. It encodes files on its own so tests do not check the readers
// against the package's own writer.
package feattest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// DefaultPeriod is 10ms in 100ns units.
const DefaultPeriod int32 = 100000

// Frames returns count frames of dim values. Value d of frame f is
// f*1000 + d + 0.25, so every cell is distinct and exactly representable.
func Frames(dim, count int) [][]float32 {
	out := make([][]float32, count)
	for f := range count {
		out[f] = make([]float32, dim)
		for d := range dim {
			out[f][d] = float32(f*1000+d) + 0.25
		}
	}
	return out
}

// Encode lays out a feature file: sample count, sample period, frame width,
// parameter kind, then the frames, all in order.
func Encode(order binary.ByteOrder, samplePeriod int32, dim int, frames [][]float32) []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, order, int32(len(frames)))
	binary.Write(buf, order, samplePeriod)
	binary.Write(buf, order, int16(dim*4))
	binary.Write(buf, order, uint16(9))

	for _, frame := range frames {
		binary.Write(buf, order, frame)
	}

	return buf.Bytes()
}

// RawHeader lays out just the header fields with arbitrary values.
func RawHeader(order binary.ByteOrder, sampleCount, samplePeriod int32, byteWidth int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, order, sampleCount)
	binary.Write(buf, order, samplePeriod)
	binary.Write(buf, order, byteWidth)
	binary.Write(buf, order, uint16(9))
	return buf.Bytes()
}

// WriteBytes stores data under dir and returns the full path.
func WriteBytes(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// WriteFeatures encodes a native-order file of count frames and returns its path.
func WriteFeatures(tb testing.TB, dir, name string, dim, count int) string {
	tb.Helper()
	return WriteBytes(tb, dir, name, Encode(binary.NativeEndian, DefaultPeriod, dim, Frames(dim, count)))
}

// WriteText stores content under dir and returns the full path.
func WriteText(tb testing.TB, dir, name, content string) string {
	tb.Helper()
	return WriteBytes(tb, dir, name, []byte(content))
}
