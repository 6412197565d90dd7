// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Source is a decoded recording.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1] and
	// returns the number of values written. n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions, without the dot, to decoders.
type Registry struct {
	codecs map[string]Decoder
	mtx    sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// DefaultRegistry knows every format this package decodes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAVDecoder{})
	r.Register("aif", AIFFDecoder{})
	r.Register("aiff", AIFFDecoder{})
	r.Register("mp3", MP3Decoder{})
	r.Register("ogg", VorbisDecoder{})
	return r
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// ForPath returns the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return d, nil
}

// OpenFile decodes the recording at path. Closing the source closes the file.
func OpenFile(reg *Registry, path string) (Source, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fileSource{Source: src, file: f}, nil
}

type fileSource struct {
	Source
	file *os.File
}

func (s *fileSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// readSeeker returns r itself when it can seek, and an in-memory copy
// otherwise. The go-audio decoders require seeking.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering recording: %w", err)
	}
	return bytes.NewReader(data), nil
}
