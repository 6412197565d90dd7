// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ik5/sosfeat/formats/htk"
	"golang.org/x/sync/errgroup"
)

// LoadBatch parses the specification file at path and loads every
// experiment it lists.
func LoadBatch(ctx context.Context, path string, opts ...Option) (Batch, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	specs, err := ParseFile(path, o.frameRate)
	if err != nil {
		return nil, err
	}

	batch, err := load(ctx, specs, o)
	if err != nil {
		o.logger.WarnContext(ctx, "experiment batch aborted",
			"path", path,
			"error", err,
		)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	o.logger.InfoContext(ctx, "experiment batch loaded",
		"path", path,
		"count", len(batch),
	)
	return batch, nil
}

// Load reads the feature data of already parsed specs.
func Load(ctx context.Context, specs []Spec, opts ...Option) (Batch, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return load(ctx, specs, o)
}

func load(ctx context.Context, specs []Spec, o options) (Batch, error) {
	if err := o.matchMode.Validate(); err != nil {
		return nil, err
	}
	if err := o.queryMode.Validate(); err != nil {
		return nil, err
	}

	batch := make(Batch, len(specs))
	errs := make([]error, len(specs))

	// firstFail is the lowest failed slot so far. Slots after it are
	// skipped; slots before it still load so the earliest failure wins.
	var firstFail atomic.Int64
	firstFail.Store(int64(len(specs)))

	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i, spec := range specs {
		if ctx.Err() != nil || int64(i) > firstFail.Load() {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if int64(i) > firstFail.Load() {
				return nil
			}

			exp, err := loadOne(spec, o)
			if err != nil {
				errs[i] = err
				for {
					cur := firstFail.Load()
					if int64(i) >= cur || firstFail.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
				return err
			}
			batch[i] = exp

			o.logger.DebugContext(ctx, "experiment loaded",
				"line", spec.Line,
				"match", spec.MatchPath,
				"query", spec.QueryPath,
				"start_frame", spec.StartFrame,
				"duration_frames", spec.DurationFrames,
			)
			return nil
		})
	}

	waitErr := g.Wait()

	// report the earliest failing line, whatever order the workers finished in
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return batch, nil
}

func loadOne(spec Spec, o options) (Experiment, error) {
	match, err := htk.ReadSegment(spec.MatchPath, o.matchMode, spec.StartFrame, spec.DurationFrames)
	if err != nil {
		return Experiment{}, &LoadError{Line: spec.Line, Path: spec.MatchPath, Err: err}
	}

	query, err := htk.ReadFile(spec.QueryPath, o.queryMode)
	if err != nil {
		return Experiment{}, &LoadError{Line: spec.Line, Path: spec.QueryPath, Err: err}
	}

	return Experiment{
		Spec:      spec,
		MatchData: match,
		QueryData: query,
	}, nil
}
