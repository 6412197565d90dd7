// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// WAVDecoder decodes 16-bit PCM WAV recordings.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating WAV data: %w", err)
	}

	return newPCMSource(dec, dec.Format()), nil
}

// WriteWAV16 writes mono samples as a 16-bit PCM WAV. Values outside
// [-1, 1] are clamped.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []float32) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, wavFormatPCM)

	// write in chunks to bound the int buffer
	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), chunkSize)),
		SourceBitDepth: 16,
	}

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf.Data = buf.Data[:len(chunk)]
		for j, x := range chunk {
			buf.Data[j] = int(toInt16(x))
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing WAV samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV file: %w", err)
	}
	return nil
}

func toInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}
