// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"time"

	"github.com/ik5/sosfeat/feature"
)

// DefaultFrameRate is the legacy 100 frames per second.
const DefaultFrameRate = 100

// Spec is one parsed line of a specification file.
type Spec struct {
	// Line is the 1-based line number in the specification file.
	Line           int
	MatchPath      string
	QueryPath      string
	StartFrame     int
	DurationFrames int
}

// Experiment is a Spec with its feature data loaded.
type Experiment struct {
	Spec

	// MatchData holds DurationFrames frames of MatchPath from StartFrame on.
	MatchData *feature.Matrix
	// QueryData holds all of QueryPath.
	QueryData *feature.Matrix
}

// Batch is the ordered result of a load; Batch[i] comes from the i-th
// experiment line.
type Batch []Experiment

// Window converts the match window to time using the frame period.
func (s Spec) Window(framePeriod time.Duration) (start, duration time.Duration) {
	return time.Duration(s.StartFrame) * framePeriod, time.Duration(s.DurationFrames) * framePeriod
}
