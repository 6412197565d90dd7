// SPDX-License-Identifier: EPL-2.0

package keeplist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxToken bounds a single token; anything longer is not an integer anyway.
const maxToken = 4096

// Load reads the keep list stored at path.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keep list: %w", err)
	}
	defer f.Close()

	units, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return units, nil
}

// Read parses whitespace-separated integers from r in order.
// An empty input yields an empty, non-nil slice.
func Read(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), maxToken)
	sc.Split(bufio.ScanWords)

	units := []int{}
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Index: len(units) + 1, Token: tok, Err: err}
		}
		units = append(units, v)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{Index: len(units) + 1, Err: fmt.Errorf("token longer than %d bytes: %w", maxToken, err)}
		}
		return nil, fmt.Errorf("reading keep list: %w", err)
	}

	return units, nil
}
