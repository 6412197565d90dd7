// SPDX-License-Identifier: EPL-2.0

package recording

import (
	"io"

	"github.com/go-audio/aiff"
)

// AIFFDecoder decodes 16-bit PCM AIFF recordings.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAiffFile
	}

	return newPCMSource(dec, format), nil
}
