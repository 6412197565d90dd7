// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Reader is the part of gomp3.Decoder used here.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always produces 16-bit little-endian stereo.
const mp3Channels = 2

type mp3Source struct {
	dec mp3Reader
	buf []byte
}

func (s *mp3Source) SampleRate() int { return s.dec.SampleRate() }
func (s *mp3Source) Channels() int   { return mp3Channels }
func (s *mp3Source) Close() error    { return nil }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.dec, s.buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding MP3: %w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	return samples, err
}

// MP3Decoder decodes MPEG-1/2 Layer III recordings.
type MP3Decoder struct{}

func (MP3Decoder) Decode(r io.Reader) (Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &mp3Source{dec: dec}, nil
}
