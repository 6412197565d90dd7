// SPDX-License-Identifier: EPL-2.0

package keeplist

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a keep list token that is not an integer
	ErrParse = errors.New("invalid keep list entry")
)

// ParseError describes a token that is not an integer.
type ParseError struct {
	// Index is the 1-based position of the token in the file.
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: token %d %q: %v", ErrParse, e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
