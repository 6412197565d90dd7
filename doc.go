// SPDX-License-Identifier: EPL-2.0

// Package sosfeat is the input layer of a spoken-term search toolkit.
//
// It reads fixed-layout acoustic feature files (a 12-byte header followed by
// float32 frames), keep lists, and experiment batches that pair a window of
// one feature file with the whole of another.
//
// # Byte order
//
// Feature files come in two byte orders: the order of the host that reads
// them, and the reverse. Every reader takes an explicit [endian.Mode]:
//
//	m, err := sosfeat.ReadFeatureFile("utt.fea", endian.Swapped)
//
// # Experiments
//
// An experiment specification file lists one experiment per line:
//
//	<matchPath> <queryPath> <startSeconds> <durationSeconds>
//
// [LoadExperimentBatch] loads all of them or none:
//
//	batch, err := sosfeat.LoadExperimentBatch(ctx, "exp.txt",
//		experiment.WithConcurrency(4),
//		experiment.WithLogger(slog.Default()),
//	)
//
// # Subpackages
//
//   - endian: byte-order reversal and the Native/Swapped modes
//   - feature: the dimension × frames float32 matrix
//   - formats/htk: header parsing, whole-file and segment reads, writing,
//     transparent .gz/.zst/.lz4 inputs
//   - keeplist: whitespace separated index lists
//   - experiment: specification parsing and batch loading
//   - recording: decoding the source audio to listen to a match window
package sosfeat
