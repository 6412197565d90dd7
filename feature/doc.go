// SPDX-License-Identifier: EPL-2.0

// Package feature holds the in-memory feature matrix produced by the
// readers in formats/htk.
//
// A Matrix has one row per feature dimension and one column per frame, the
// same orientation the search code expects. Its shape is fixed when it is
// created; there is no resize.
//
//	m := feature.NewMatrix(39, 500) // 39 coefficients, 500 frames
//	m.Set(0, 10, 1.5)
//	frame := m.Frame(10)            // all 39 values of frame 10
//
// Values are stored as float32, the width used on disk. Dense converts a
// matrix to a gonum *mat.Dense for callers doing linear algebra; float32 to
// float64 conversion is exact.
package feature
