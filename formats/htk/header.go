// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sosfeat/endian"
)

const (
	// HeaderSize is the number of bytes before the first frame.
	HeaderSize = 12

	// minHeaderSize covers sample count, sample period and frame width.
	// The trailing parameter kind is optional for readers.
	minHeaderSize = 10

	// ValueSize is the on-disk width of a single feature value.
	ValueSize = 4

	// ParmKindUser is the parameter kind written by Encode.
	ParmKindUser uint16 = 9
)

// Header is the fixed prefix of a feature file.
type Header struct {
	// SampleCount is the number of frames in the body.
	SampleCount int
	// SamplePeriod is the frame period in 100ns units.
	SamplePeriod int32
	// ByteWidth is the size of one frame in bytes.
	ByteWidth int
	// ParmKind is carried as-is; readers never interpret it.
	ParmKind uint16
}

// Dimension is the number of float32 values per frame.
func (h Header) Dimension() int { return h.ByteWidth / ValueSize }

// FrameSize is the number of body bytes per frame.
func (h Header) FrameSize() int64 { return int64(h.ByteWidth) }

// BodySize is the number of body bytes the header declares.
func (h Header) BodySize() int64 { return int64(h.SampleCount) * h.FrameSize() }

func (h Header) validate() error {
	if h.SampleCount < 0 {
		return fmt.Errorf("%w: negative sample count %d", ErrMalformedHeader, h.SampleCount)
	}
	if h.ByteWidth <= 0 || h.ByteWidth%ValueSize != 0 {
		return fmt.Errorf("%w: frame width %d is not a positive multiple of %d", ErrMalformedHeader, h.ByteWidth, ValueSize)
	}
	return nil
}

// ReadHeader consumes the header from r and decodes it according to mode.
// On success r is positioned at the first frame.
func ReadHeader(r io.Reader, mode endian.Mode) (Header, error) {
	if err := mode.Validate(); err != nil {
		return Header{}, err
	}

	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Header{}, fmt.Errorf("reading header: %w", err)
	}
	if n < minHeaderSize {
		return Header{}, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, n, minHeaderSize)
	}

	h := Header{
		SampleCount:  int(int32(mode.Uint32(buf[0:4]))),
		SamplePeriod: int32(mode.Uint32(buf[4:8])),
		ByteWidth:    int(int16(mode.Uint16(buf[8:10]))),
	}
	if n == HeaderSize {
		h.ParmKind = mode.Uint16(buf[10:12])
	}

	if err := h.validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// ReadSamplePeriod reads only the sample count and sample period fields and
// returns the period. The frame width is not checked.
func ReadSamplePeriod(r io.Reader, mode endian.Mode) (int32, error) {
	if err := mode.Validate(); err != nil {
		return 0, err
	}

	buf := make([]byte, 8)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, n, len(buf))
		}
		return 0, fmt.Errorf("reading header: %w", err)
	}

	return int32(mode.Uint32(buf[4:8])), nil
}
