// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used here.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type vorbisSource struct {
	dec oggReader
}

func (s *vorbisSource) SampleRate() int { return s.dec.SampleRate() }
func (s *vorbisSource) Channels() int   { return s.dec.Channels() }
func (s *vorbisSource) Close() error    { return nil }

// ReadSamples only asks for whole frames; oggvorbis returns interleaved values.
func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.dec.Channels()
	if frames == 0 {
		return 0, nil
	}
	return s.dec.Read(dst[:frames*s.dec.Channels()])
}

// VorbisDecoder decodes Ogg Vorbis recordings.
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(r io.Reader) (Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &vorbisSource{dec: dec}, nil
}
