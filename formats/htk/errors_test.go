// SPDX-License-Identifier: EPL-2.0

package htk

import (
	"errors"
	"testing"
)

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	allErrors := map[string]error{
		"ErrTruncatedHeader":  ErrTruncatedHeader,
		"ErrMalformedHeader":  ErrMalformedHeader,
		"ErrTruncatedBody":    ErrTruncatedBody,
		"ErrOutOfRange":       ErrOutOfRange,
		"ErrCompressedStream": ErrCompressedStream,
	}

	messages := make(map[string]string)
	for name, err := range allErrors {
		if err == nil {
			t.Fatalf("%s is nil", name)
		}
		msg := err.Error()
		if existing, found := messages[msg]; found {
			t.Errorf("%s has same message as %s: %q", name, existing, msg)
		}
		messages[msg] = name

		for other, otherErr := range allErrors {
			if other != name && errors.Is(err, otherErr) {
				t.Errorf("errors.Is(%s, %s) = true, want false", name, other)
			}
		}
	}
}
