// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// pcmReader is the part of the go-audio wav and aiff decoders used here.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// pcmSource adapts a go-audio 16-bit PCM decoder to Source.
type pcmSource struct {
	dec    pcmReader
	format *goaudio.Format
	intBuf *goaudio.IntBuffer
	eof    bool
}

func newPCMSource(dec pcmReader, format *goaudio.Format) *pcmSource {
	return &pcmSource{dec: dec, format: format}
}

func (s *pcmSource) SampleRate() int { return s.format.SampleRate }
func (s *pcmSource) Channels() int   { return s.format.NumChannels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		s.eof = true
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / 32768.0
	}

	if err == io.EOF {
		s.eof = true
	}
	return n, err
}
