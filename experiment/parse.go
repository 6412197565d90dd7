// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const specFields = 4

// ParseFile reads every experiment line of the file at path.
func ParseFile(path string, frameRate int) ([]Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening experiment file: %w", err)
	}
	defer f.Close()

	specs, err := ParseSpecs(f, frameRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// ParseSpecs reads experiment lines from r. Blank lines are skipped; any
// other line must hold exactly four fields with numeric times.
func ParseSpecs(r io.Reader, frameRate int) ([]Spec, error) {
	if frameRate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", frameRate)
	}

	sc := bufio.NewScanner(r)
	specs := []Spec{}
	line := 0

	for sc.Scan() {
		line++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != specFields {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("want %d fields, got %d", specFields, len(fields))}
		}

		start, err := secondsToFrames(fields[2], frameRate)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("start: %w", err)}
		}
		duration, err := secondsToFrames(fields[3], frameRate)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("duration: %w", err)}
		}

		specs = append(specs, Spec{
			Line:           line,
			MatchPath:      fields[0],
			QueryPath:      fields[1],
			StartFrame:     start,
			DurationFrames: duration,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading experiment file: %w", err)
	}

	return specs, nil
}

// secondsToFrames computes floor(seconds × frameRate). Times are held at
// single precision, as the recording tools wrote them, so "0.29" is frame 29
// and not the 28 a double-precision product would floor to.
func secondsToFrames(field string, frameRate int) (int, error) {
	v, err := strconv.ParseFloat(field, 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", field, strconv.ErrSyntax)
	}

	frames := math.Floor(float64(float32(float32(v) * float32(frameRate))))
	if frames > math.MaxInt32 || frames < math.MinInt32 {
		return 0, fmt.Errorf("%q: %w", field, strconv.ErrRange)
	}

	return int(frames), nil
}
