// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const clipBufSize = 4096

// samplesIn converts d to a sample count at rate, rounding down.
func samplesIn(d time.Duration, rate int) int {
	return int(int64(d) * int64(rate) / int64(time.Second))
}

// Clip returns the mono samples of src between start and start+duration.
// The window must lie inside the recording.
func Clip(src Source, start, duration time.Duration) ([]float32, error) {
	if start < 0 || duration < 0 {
		return nil, fmt.Errorf("%w: start %v, duration %v", ErrWindowOutOfRange, start, duration)
	}

	rate := src.SampleRate()
	skip := samplesIn(start, rate)
	count := samplesIn(duration, rate)

	mono := NewMonoMixer(src)
	out := make([]float32, 0, min(count, 1<<20))
	buf := make([]float32, clipBufSize)
	pos := 0

	for len(out) < count {
		n, err := mono.ReadSamples(buf)
		chunk := buf[:n]

		if pos < skip {
			drop := min(skip-pos, n)
			chunk = chunk[drop:]
			pos += drop
		}
		if len(chunk) > 0 {
			take := min(len(chunk), count-len(out))
			out = append(out, chunk[:take]...)
			pos += take
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading recording: %w", err)
		}
		if n == 0 {
			// a source that returns nothing without EOF would spin
			break
		}
	}

	if len(out) < count {
		return nil, fmt.Errorf("%w: need %d samples from %d, recording has %d",
			ErrWindowOutOfRange, count, skip, pos)
	}

	return out, nil
}

// ExtractFile clips the window [start, start+duration) of the recording at
// in and writes it to out as a 16-bit mono WAV at the source sample rate.
func ExtractFile(reg *Registry, in, out string, start, duration time.Duration) error {
	src, err := OpenFile(reg, in)
	if err != nil {
		return err
	}
	defer src.Close()

	samples, err := Clip(src, start, duration)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	return createWAV(out, src.SampleRate(), samples, WriteWAV16)
}

// createWAV writes samples to a new file at path with write. A failed
// write leaves no file behind.
func createWAV(path string, sampleRate int, samples []float32, write func(io.WriteSeeker, int, []float32) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating clip: %w", err)
	}

	if err := write(f, sampleRate, samples); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing clip: %w", err)
	}
	return nil
}
