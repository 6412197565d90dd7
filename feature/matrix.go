// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dimension × frames matrix of float32 features, stored one
// frame after another.
type Matrix struct {
	dim    int
	frames int
	data   []float32
}

// NewMatrix allocates a zeroed matrix. It panics on negative sizes, like
// make does.
func NewMatrix(dim, frames int) *Matrix {
	if dim < 0 || frames < 0 {
		panic(fmt.Sprintf("feature: %v: %d x %d", ErrInvalidShape, dim, frames))
	}
	return &Matrix{
		dim:    dim,
		frames: frames,
		data:   make([]float32, dim*frames),
	}
}

// FromData wraps data, laid out frame after frame, as a dim × frames
// matrix. The matrix takes ownership of data.
func FromData(dim, frames int, data []float32) (*Matrix, error) {
	if dim < 0 || frames < 0 || len(data) != dim*frames {
		return nil, fmt.Errorf("%w: %d values for %d x %d", ErrInvalidShape, len(data), dim, frames)
	}
	return &Matrix{dim: dim, frames: frames, data: data[:len(data):len(data)]}, nil
}

// Dims returns the feature dimension and the frame count.
func (m *Matrix) Dims() (dim, frames int) { return m.dim, m.frames }

// Dimension returns the number of coefficients per frame.
func (m *Matrix) Dimension() int { return m.dim }

// Frames returns the number of frames.
func (m *Matrix) Frames() int { return m.frames }

// At returns the value of coefficient d in frame f.
func (m *Matrix) At(d, f int) float32 {
	m.check(d, f)
	return m.data[f*m.dim+d]
}

// Set stores v as coefficient d of frame f.
func (m *Matrix) Set(d, f int, v float32) {
	m.check(d, f)
	m.data[f*m.dim+d] = v
}

// Frame returns the column for frame f. The slice aliases the matrix.
func (m *Matrix) Frame(f int) []float32 {
	if f < 0 || f >= m.frames {
		panic(fmt.Sprintf("feature: frame %d out of range [0,%d)", f, m.frames))
	}
	return m.data[f*m.dim : (f+1)*m.dim : (f+1)*m.dim]
}

// Slice copies frames [start, start+count) into a new matrix.
func (m *Matrix) Slice(start, count int) (*Matrix, error) {
	if start < 0 || count < 0 || start+count > m.frames {
		return nil, fmt.Errorf("%w: [%d,%d) of %d frames", ErrFrameRange, start, start+count, m.frames)
	}
	out := NewMatrix(m.dim, count)
	copy(out.data, m.data[start*m.dim:(start+count)*m.dim])
	return out, nil
}

// Equal reports whether both matrices have the same shape and bit-identical
// values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.dim != o.dim || m.frames != o.frames {
		return false
	}
	for i, v := range m.data {
		if math.Float32bits(v) != math.Float32bits(o.data[i]) {
			return false
		}
	}
	return true
}

// Dense copies the matrix into a gonum dense matrix of the same shape.
// gonum does not allow empty matrices, so Dense returns nil when either
// dimension is zero.
func (m *Matrix) Dense() *mat.Dense {
	if m.dim == 0 || m.frames == 0 {
		return nil
	}
	out := mat.NewDense(m.dim, m.frames, nil)
	for f := range m.frames {
		for d, v := range m.Frame(f) {
			out.Set(d, f, float64(v))
		}
	}
	return out
}

func (m *Matrix) check(d, f int) {
	if d < 0 || d >= m.dim || f < 0 || f >= m.frames {
		panic(fmt.Sprintf("feature: index (%d,%d) out of range %dx%d", d, f, m.dim, m.frames))
	}
}
