// SPDX-License-Identifier: EPL-2.0

package recording

import "errors"

var (
	// ErrUnsupportedFormat indicates no decoder is registered for a file extension
	ErrUnsupportedFormat = errors.New("unsupported recording format")

	// ErrNotWavFile indicates the input is not a WAV file
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNotAiffFile indicates the input is not an AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported indicates an encoding other than 16-bit PCM
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM is supported")

	// ErrWindowOutOfRange indicates a clip window outside the recording
	ErrWindowOutOfRange = errors.New("clip window outside recording")
)
