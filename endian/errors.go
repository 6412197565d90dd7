// SPDX-License-Identifier: EPL-2.0

package endian

import "errors"

var (
	// ErrInvalidMode is returned when an entry point receives a Mode that is
	// neither Native nor Swapped.
	ErrInvalidMode = errors.New("invalid endian mode")
)
