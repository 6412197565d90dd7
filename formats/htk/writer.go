// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/feature"
)

// maxDimension keeps the frame width inside the signed 16-bit header field.
const maxDimension = math.MaxInt16 / ValueSize

// Encode writes m as a feature file with the given sample period (100ns
// units). Every field and value is stored in the byte order of mode, so a
// file written with Swapped is read back with Swapped.
func Encode(w io.Writer, mode endian.Mode, samplePeriod int32, m *feature.Matrix) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	dim, frames := m.Dims()
	if dim <= 0 || dim > maxDimension {
		return fmt.Errorf("%w: dimension %d not in [1,%d]", ErrMalformedHeader, dim, maxDimension)
	}
	if frames > math.MaxInt32 {
		return fmt.Errorf("%w: %d frames", ErrMalformedHeader, frames)
	}

	order := mode.ByteOrder()

	header := make([]byte, HeaderSize)
	order.PutUint32(header[0:4], uint32(frames))
	order.PutUint32(header[4:8], uint32(samplePeriod))
	order.PutUint16(header[8:10], uint16(dim*ValueSize))
	order.PutUint16(header[10:12], ParmKindUser)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := make([]byte, dim*ValueSize)
	for f := range frames {
		for d, v := range m.Frame(f) {
			order.PutUint32(buf[d*ValueSize:], math.Float32bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing frame %d: %w", f, err)
		}
	}

	return nil
}

// WriteFile creates path and encodes m into it, compressing when the
// extension is .gz, .zst or .lz4.
func WriteFile(path string, mode endian.Mode, samplePeriod int32, m *feature.Matrix) (err error) {
	w, err := createStream(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := Encode(w, mode, samplePeriod, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
