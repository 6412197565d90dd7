// SPDX-License-Identifier: EPL-2.0

package htk

import "errors"

var (
	// ErrTruncatedHeader indicates the file ends before the header fields
	ErrTruncatedHeader = errors.New("truncated feature file header")

	// ErrMalformedHeader indicates a header with an impossible sample count or frame width
	ErrMalformedHeader = errors.New("malformed feature file header")

	// ErrTruncatedBody indicates fewer frames on disk than the header declares
	ErrTruncatedBody = errors.New("truncated feature file body")

	// ErrOutOfRange indicates a segment request outside the declared frames
	ErrOutOfRange = errors.New("segment out of range")

	// ErrCompressedStream indicates the decompressor could not be set up
	ErrCompressedStream = errors.New("cannot open compressed feature stream")
)
