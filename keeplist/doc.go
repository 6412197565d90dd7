// SPDX-License-Identifier: EPL-2.0

// Package keeplist reads the list of phoneme units kept by unit selection.
//
// A keep list is a text file of whitespace-separated integers with any line
// breaks. Load returns them in file order, duplicates included:
//
//	units, err := keeplist.Load("keep.txt") // "3 1 4 1 5" -> [3 1 4 1 5]
//
// A token that is not an integer stops the read with a *ParseError; the
// list is never silently shortened.
package keeplist
