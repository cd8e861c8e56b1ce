// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package alphanum drives one or more quad 14-segment alphanumeric LED
// backpacks as a single text display.
//
// Each backpack holds an HT16K33 and four 14-segment digits, plus a colon and
// a decimal point. Backpacks are chained by giving them distinct I²C
// addresses (0x70-0x73) and passing them to New in left to right order.
//
// The display keeps a fixed size content buffer which may be longer than the
// number of visible digits. PrintString, ShiftLeft, RotateLeft and friends
// operate on the whole buffer and then redraw the first 4 × len(displays)
// characters.
//
// # Segments
//
// Segments are labelled A to N:
//
//	 -----A-----
//	|\    |    /|
//	F H   J   K B
//	|   \ | /   |
//	 --G--   --I--
//	|   / | \   |
//	E N   M   L C
//	|/    |    \|
//	 -----D-----
//
// The wiring of the backpack does not map segments to RAM linearly; Resolve
// returns the RAM byte and bit for a segment of a digit.
package alphanum
