// SPDX-License-Identifier: EPL-2.0

package feature

import "errors"

var (
	// ErrInvalidShape indicates data that does not fill a dimension × frames matrix
	ErrInvalidShape = errors.New("invalid matrix shape")

	// ErrFrameRange indicates a frame range that does not lie inside the matrix
	ErrFrameRange = errors.New("frame range outside matrix")
)
