// SPDX-License-Identifier: EPL-2.0

// Package experiment loads batches of query/match experiments for phoneme
// unit selection.
//
// # Specification File
//
// Each non-blank line names one experiment:
//
//	<match file> <query file> <start seconds> <duration seconds>
//
// Times are converted to frames at 100 frames per second (10ms frames) by
// default, truncating toward the earlier frame: a start of 1.0s is frame 100
// and a duration of 0.5s is 50 frames.
//
// # Loading
//
//	batch, err := experiment.LoadBatch(ctx, "experiments.txt")
//	for _, exp := range batch {
//	    // exp.MatchData: the match window of the match file
//	    // exp.QueryData: the whole query file
//	}
//
// The file is parsed completely before any feature file is opened, which
// fixes the batch size. The first failing line aborts the load and no batch
// is returned.
//
// # Options
//
// WithConcurrency loads several experiments at once; experiment i is always
// built from line i regardless of completion order. WithLogger attaches a
// slog.Logger; without it nothing is logged. WithFrameRate changes the
// seconds to frames conversion.
package experiment
