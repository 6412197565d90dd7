// SPDX-License-Identifier: EPL-2.0

package sosfeat

import (
	"context"
	"fmt"
	"time"

	"github.com/ik5/sosfeat/endian"
	"github.com/ik5/sosfeat/experiment"
	"github.com/ik5/sosfeat/feature"
	"github.com/ik5/sosfeat/formats/htk"
	"github.com/ik5/sosfeat/keeplist"
	"github.com/ik5/sosfeat/recording"
)

// ReadFeatureFile reads every frame of the feature file at path.
func ReadFeatureFile(path string, mode endian.Mode) (*feature.Matrix, error) {
	return htk.ReadFile(path, mode)
}

// ReadFeatureSegment reads duration frames starting at frame start.
func ReadFeatureSegment(path string, mode endian.Mode, start, duration int) (*feature.Matrix, error) {
	return htk.ReadSegment(path, mode, start, duration)
}

// LoadKeepList reads the integers of a keep list file in file order.
func LoadKeepList(path string) ([]int, error) {
	return keeplist.Load(path)
}

// GetSamplePeriod returns the sample period field of a feature file, in
// 100 ns units.
func GetSamplePeriod(path string, mode endian.Mode) (int32, error) {
	return htk.SamplePeriod(path, mode)
}

// LoadExperimentBatch loads every experiment listed in the specification
// file at path. Any failure discards the whole batch.
func LoadExperimentBatch(ctx context.Context, path string, opts ...experiment.Option) (experiment.Batch, error) {
	return experiment.LoadBatch(ctx, path, opts...)
}

// FramePeriod converts a sample period field to a duration.
func FramePeriod(samplePeriod int32) time.Duration {
	return time.Duration(samplePeriod) * 100 * time.Nanosecond
}

// ExtractMatch writes the match window of spec, cut from the recording the
// match features were computed from, to outPath as a 16-bit mono WAV.
func ExtractMatch(recordingPath, outPath string, spec experiment.Spec, mode endian.Mode) error {
	period, err := htk.SamplePeriod(spec.MatchPath, mode)
	if err != nil {
		return err
	}
	if period <= 0 {
		return fmt.Errorf("%s: %w: sample period %d", spec.MatchPath, htk.ErrMalformedHeader, period)
	}

	start, duration := spec.Window(FramePeriod(period))
	return recording.ExtractFile(recording.DefaultRegistry(), recordingPath, outPath, start, duration)
}
