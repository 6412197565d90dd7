// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/internal/feattest"
)

func TestCompressionFor(t *testing.T) {
	t.Parallel()

	tests := map[string]Compression{
		"a.fea":        None,
		"a.mfc":        None,
		"a.fea.gz":     Gzip,
		"A.FEA.GZ":     Gzip,
		"a.fea.zst":    Zstd,
		"a.fea.zstd":   Zstd,
		"a.fea.lz4":    LZ4,
		"dir.gz/a.fea": None,
		"no-extension": None,
	}

	for path, want := range tests {
		if got := CompressionFor(path); got != want {
			t.Errorf("CompressionFor(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestCompressed_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matrixFromFrames(feattest.Frames(4, 25))

	for _, ext := range []string{".fea.gz", ".fea.zst", ".fea.lz4"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "doc"+ext)
			if err := WriteFile(path, endian.Native, feattest.DefaultPeriod, m); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			full, err := ReadFile(path, endian.Native)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if !full.Equal(m) {
				t.Error("ReadFile() returned different values")
			}

			seg, err := ReadSegment(path, endian.Native, 10, 5)
			if err != nil {
				t.Fatalf("ReadSegment() error = %v", err)
			}
			want, _ := m.Slice(10, 5)
			if !seg.Equal(want) {
				t.Error("ReadSegment() returned different values")
			}

			p, err := SamplePeriod(path, endian.Native)
			if err != nil || p != feattest.DefaultPeriod {
				t.Errorf("SamplePeriod() = (%d, %v), want (%d, nil)", p, err, feattest.DefaultPeriod)
			}
		})
	}
}

func TestCompressed_CorruptGzip(t *testing.T) {
	t.Parallel()

	path := feattest.WriteText(t, t.TempDir(), "bad.fea.gz", "this is not gzip data")

	if _, err := ReadFile(path, endian.Native); !errors.Is(err, ErrCompressedStream) {
		t.Errorf("ReadFile() error = %v, want ErrCompressedStream", err)
	}
}
