// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/feature"
)

// Decode reads a complete feature file from r: the header followed by every
// frame it declares. A body shorter than declared yields ErrTruncatedBody
// and no matrix.
func Decode(r io.Reader, mode endian.Mode) (*feature.Matrix, error) {
	h, err := ReadHeader(r, mode)
	if err != nil {
		return nil, err
	}

	return readFrames(r, mode, h, 0, h.SampleCount)
}

// DecodeSegment reads frames [start, start+duration) of the feature file in
// r. The leading frames are skipped with a seek when r is an io.Seeker and
// are read and discarded otherwise.
func DecodeSegment(r io.Reader, mode endian.Mode, start, duration int) (*feature.Matrix, error) {
	h, err := ReadHeader(r, mode)
	if err != nil {
		return nil, err
	}
	if err := checkSegment(h, start, duration); err != nil {
		return nil, err
	}

	var seeker io.Seeker
	if s, ok := r.(io.Seeker); ok {
		seeker = s
	}
	if err := skipFrames(r, seeker, h, start); err != nil {
		return nil, err
	}

	return readFrames(r, mode, h, start, duration)
}

// ReadFile opens path and decodes the whole file.
// Files ending in .gz, .zst or .lz4 are decompressed on the fly.
func ReadFile(path string, mode endian.Mode) (*feature.Matrix, error) {
	s, err := openStream(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	h, err := ReadHeader(s, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkBodySize(s, h, h.SampleCount); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := readFrames(s, mode, h, 0, h.SampleCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadSegment opens path and decodes frames [start, start+duration).
func ReadSegment(path string, mode endian.Mode, start, duration int) (*feature.Matrix, error) {
	s, err := openStream(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	h, err := ReadHeader(s, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkSegment(h, start, duration); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkBodySize(s, h, start+duration); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := skipFrames(s, s.seeker, h, start); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := readFrames(s, mode, h, start, duration)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadFileHeader opens path and decodes only its header.
func ReadFileHeader(path string, mode endian.Mode) (Header, error) {
	s, err := openStream(path)
	if err != nil {
		return Header{}, err
	}
	defer s.Close()

	h, err := ReadHeader(s, mode)
	if err != nil {
		return Header{}, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// SamplePeriod opens path and returns the sample period field without
// reading the rest of the file.
func SamplePeriod(path string, mode endian.Mode) (int32, error) {
	s, err := openStream(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	p, err := ReadSamplePeriod(s, mode)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func checkSegment(h Header, start, duration int) error {
	// compare without adding so huge requests cannot wrap around
	if start < 0 || duration < 0 || start > h.SampleCount || duration > h.SampleCount-start {
		return fmt.Errorf("%w: %d frames from frame %d of %d", ErrOutOfRange, duration, start, h.SampleCount)
	}
	return nil
}

// checkBodySize rejects a plain file too short for the frames about to be
// read, before the matrix is allocated.
func checkBodySize(s *stream, h Header, frames int) error {
	if s.size < 0 || frames == 0 {
		return nil
	}
	need := HeaderSize + int64(frames)*h.FrameSize()
	if s.size < need {
		return fmt.Errorf("%w: need %d bytes, file has %d", ErrTruncatedBody, need, s.size)
	}
	return nil
}

func skipFrames(r io.Reader, seeker io.Seeker, h Header, frames int) error {
	skip := int64(frames) * h.FrameSize()
	if skip == 0 {
		return nil
	}

	if seeker != nil {
		if _, err := seeker.Seek(skip, io.SeekCurrent); err != nil {
			return fmt.Errorf("seeking to frame %d: %w", frames, err)
		}
		return nil
	}

	n, err := io.CopyN(io.Discard, r, skip)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: skipped %d of %d frames", ErrTruncatedBody, n/h.FrameSize(), frames)
		}
		return fmt.Errorf("skipping frames: %w", err)
	}
	return nil
}

// maxPrealloc bounds the values allocated before any frame has been read,
// so a corrupt sample count on an unsized stream fails with
// ErrTruncatedBody instead of a huge allocation.
const maxPrealloc = 1 << 20

// readFrames decodes count frames into a new matrix. first is only used in
// error messages.
func readFrames(r io.Reader, mode endian.Mode, h Header, first, count int) (*feature.Matrix, error) {
	dim := h.Dimension()
	data := make([]float32, 0, min(dim*count, maxPrealloc))
	buf := make([]byte, h.ByteWidth)

	for f := range count {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: frame %d of %d", ErrTruncatedBody, first+f, h.SampleCount)
			}
			return nil, fmt.Errorf("reading frame %d: %w", first+f, err)
		}

		for d := range dim {
			data = append(data, mode.Float32(buf[d*ValueSize:]))
		}
	}

	return feature.FromData(dim, count, data)
}
