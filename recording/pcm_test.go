// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader simulates the go-audio decoders, which report the end of
// the data with 0, nil.
type mockPCMReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestPCMSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &mockPCMReader{samples: []int{0, 16384, -16384, 32767, -32768}}
	src := newPCMSource(dec, &goaudio.Format{SampleRate: 8000, NumChannels: 1})

	if src.SampleRate() != 8000 || src.Channels() != 1 {
		t.Fatalf("format = %d Hz x %d, want 8000 Hz x 1", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if n != 3 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 3, nil", n, err)
	}
	want := []float32{0, 0.5, -0.5}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if dst[1] != -1 {
		t.Errorf("dst[1] = %v, want -1", dst[1])
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, io.EOF", n, err)
	}

	// stays at EOF
	if _, err := src.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() after end error = %v, want io.EOF", err)
	}
}

func TestPCMSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newPCMSource(&mockPCMReader{samples: []int{1}}, &goaudio.Format{SampleRate: 8000, NumChannels: 1})
	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestPCMSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := newPCMSource(&mockPCMReader{err: boom}, &goaudio.Format{SampleRate: 8000, NumChannels: 1})
	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
