// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the container a feature file is wrapped in.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	LZ4
)

// CompressionFor picks the container from the file extension.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// stream is an open feature file. seeker and size are only set for plain
// files, where frames can be skipped with a seek and the body length is
// known up front.
type stream struct {
	io.Reader
	seeker io.Seeker
	size   int64
	closer func() error
}

func (s *stream) Close() error { return s.closer() }

func openStream(path string) (*stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feature file: %w", err)
	}

	c := CompressionFor(path)
	if c == None {
		s := &stream{Reader: f, seeker: f, size: -1, closer: f.Close}
		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			s.size = fi.Size()
		}
		return s, nil
	}

	switch c {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrCompressedStream, path, err)
		}
		return &stream{Reader: zr, size: -1, closer: func() error {
			return errors.Join(zr.Close(), f.Close())
		}}, nil
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrCompressedStream, path, err)
		}
		return &stream{Reader: zr, size: -1, closer: func() error {
			zr.Close()
			return f.Close()
		}}, nil
	default:
		return &stream{Reader: lz4.NewReader(f), size: -1, closer: f.Close}, nil
	}
}

// createStream opens path for writing, wrapped in the container its
// extension names. Close flushes the container before closing the file.
func createStream(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating feature file: %w", err)
	}

	var w io.WriteCloser
	switch CompressionFor(path) {
	case Gzip:
		w = gzip.NewWriter(f)
	case Zstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrCompressedStream, path, err)
		}
		w = zw
	case LZ4:
		w = lz4.NewWriter(f)
	default:
		return f, nil
	}

	return &layeredWriter{WriteCloser: w, file: f}, nil
}

type layeredWriter struct {
	io.WriteCloser
	file *os.File
}

func (w *layeredWriter) Close() error {
	return errors.Join(w.WriteCloser.Close(), w.file.Close())
}
