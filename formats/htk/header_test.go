// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/internal/feattest"
)

func TestReadHeader_Native(t *testing.T) {
	t.Parallel()

	data := feattest.RawHeader(binary.NativeEndian, 250, 100000, 52)

	h, err := ReadHeader(bytes.NewReader(data), endian.Native)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v, want nil", err)
	}

	if h.SampleCount != 250 {
		t.Errorf("SampleCount = %d, want 250", h.SampleCount)
	}
	if h.SamplePeriod != 100000 {
		t.Errorf("SamplePeriod = %d, want 100000", h.SamplePeriod)
	}
	if h.ByteWidth != 52 {
		t.Errorf("ByteWidth = %d, want 52", h.ByteWidth)
	}
	if h.Dimension() != 13 {
		t.Errorf("Dimension() = %d, want 13", h.Dimension())
	}
	if h.ParmKind != 9 {
		t.Errorf("ParmKind = %d, want 9", h.ParmKind)
	}
	if h.BodySize() != 250*52 {
		t.Errorf("BodySize() = %d, want %d", h.BodySize(), 250*52)
	}
}

func TestReadHeader_Swapped(t *testing.T) {
	t.Parallel()

	native := feattest.RawHeader(binary.NativeEndian, 250, 100000, 52)
	swapped := feattest.RawHeader(endian.Swapped.ByteOrder(), 250, 100000, 52)

	if bytes.Equal(native, swapped) {
		t.Fatal("swapped header is identical to native header")
	}

	h, err := ReadHeader(bytes.NewReader(swapped), endian.Swapped)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v, want nil", err)
	}
	if h.SampleCount != 250 || h.SamplePeriod != 100000 || h.ByteWidth != 52 {
		t.Errorf("ReadHeader() = %+v, want count 250, period 100000, width 52", h)
	}
}

func TestReadHeader_BigEndianBytes(t *testing.T) {
	t.Parallel()

	if endian.Swapped.ByteOrder() != binary.BigEndian {
		t.Skip("host is big-endian")
	}

	// 3 frames, period 100000 (0x000186A0), width 8, kind 9
	data := []byte{
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x01, 0x86, 0xA0,
		0x00, 0x08,
		0x00, 0x09,
	}

	h, err := ReadHeader(bytes.NewReader(data), endian.Swapped)
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}
	if h.SampleCount != 3 || h.SamplePeriod != 100000 || h.Dimension() != 2 {
		t.Errorf("ReadHeader() = %+v", h)
	}
}

func TestReadHeader_Truncated(t *testing.T) {
	t.Parallel()

	full := feattest.RawHeader(binary.NativeEndian, 1, 100000, 4)

	for _, n := range []int{0, 1, 4, 8, 9} {
		_, err := ReadHeader(bytes.NewReader(full[:n]), endian.Native)
		if !errors.Is(err, ErrTruncatedHeader) {
			t.Errorf("ReadHeader(%d bytes) error = %v, want ErrTruncatedHeader", n, err)
		}
	}
}

func TestReadHeader_TenBytesIsEnough(t *testing.T) {
	t.Parallel()

	full := feattest.RawHeader(binary.NativeEndian, 0, 100000, 4)

	for _, n := range []int{10, 11} {
		h, err := ReadHeader(bytes.NewReader(full[:n]), endian.Native)
		if err != nil {
			t.Errorf("ReadHeader(%d bytes) error = %v, want nil", n, err)
			continue
		}
		if h.ParmKind != 0 {
			t.Errorf("ReadHeader(%d bytes) ParmKind = %d, want 0", n, h.ParmKind)
		}
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		count     int32
		byteWidth int16
	}{
		{"zero width", 10, 0},
		{"negative width", 10, -8},
		{"width not multiple of 4", 10, 6},
		{"negative count", -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := feattest.RawHeader(binary.NativeEndian, tt.count, 100000, tt.byteWidth)
			_, err := ReadHeader(bytes.NewReader(data), endian.Native)
			if !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("ReadHeader() error = %v, want ErrMalformedHeader", err)
			}
		})
	}
}

func TestReadHeader_InvalidMode(t *testing.T) {
	t.Parallel()

	data := feattest.RawHeader(binary.NativeEndian, 1, 100000, 4)
	_, err := ReadHeader(bytes.NewReader(data), endian.Mode(0))
	if !errors.Is(err, endian.ErrInvalidMode) {
		t.Errorf("ReadHeader() error = %v, want ErrInvalidMode", err)
	}
}

func TestReadSamplePeriod(t *testing.T) {
	t.Parallel()

	for _, mode := range []endian.Mode{endian.Native, endian.Swapped} {
		data := feattest.RawHeader(mode.ByteOrder(), 7, 62500, 12)

		p, err := ReadSamplePeriod(bytes.NewReader(data), mode)
		if err != nil {
			t.Fatalf("%s: ReadSamplePeriod() error = %v", mode, err)
		}

		h, err := ReadHeader(bytes.NewReader(data), mode)
		if err != nil {
			t.Fatalf("%s: ReadHeader() error = %v", mode, err)
		}

		if p != 62500 || p != h.SamplePeriod {
			t.Errorf("%s: ReadSamplePeriod() = %d, header says %d, want 62500", mode, p, h.SamplePeriod)
		}
	}
}

func TestReadSamplePeriod_Truncated(t *testing.T) {
	t.Parallel()

	data := feattest.RawHeader(binary.NativeEndian, 7, 62500, 12)
	_, err := ReadSamplePeriod(bytes.NewReader(data[:7]), endian.Native)
	if !errors.Is(err, ErrTruncatedHeader) {
		t.Errorf("ReadSamplePeriod() error = %v, want ErrTruncatedHeader", err)
	}
}

func TestReadSamplePeriod_IgnoresFrameWidth(t *testing.T) {
	t.Parallel()

	// an invalid width does not matter when only the period is read
	data := feattest.RawHeader(binary.NativeEndian, 7, 62500, 3)
	p, err := ReadSamplePeriod(bytes.NewReader(data), endian.Native)
	if err != nil || p != 62500 {
		t.Errorf("ReadSamplePeriod() = (%d, %v), want (62500, nil)", p, err)
	}
}
