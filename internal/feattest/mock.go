// SPDX-License-Identifier: EPL-2.0

package feattest

import (
	"io"
	"math"
)

// MockSource generates interleaved float32 audio for recording tests.
// It satisfies recording.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
	closed       bool
}

func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewRampSource encodes the sample index into every value so tests can tell
// exactly which samples a clip contains: sample i reads i/totalSamples.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample) / float32(totalSamples)
	})
}

// NewSineSource generates a sine wave of the given frequency.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
