// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package alphanum

import (
	"github.com/GermanBionicSystems/alphadisplay/ht16k33"
)

// Segment is one of the 14 strokes of a digit.
type Segment uint8

// Segments in font bit order. A to G are wired to the low half of a common
// line and H to N to the high half.
const (
	SegmentA Segment = iota
	SegmentB
	SegmentC
	SegmentD
	SegmentE
	SegmentF
	SegmentG
	SegmentH
	SegmentI
	SegmentJ
	SegmentK
	SegmentL
	SegmentM
	SegmentN

	// NumSegments is the number of segments in a digit.
	NumSegments = 14
)

// commons is the number of common lines the segments are folded onto.
const commons = 7

// commonOverrides lists the segments that are not wired to the common line
// their ordinal implies.
var commonOverrides = map[Segment]uint8{
	SegmentH: 1,
	SegmentI: 0,
}

func (s Segment) String() string {
	if s >= NumSegments {
		return "Segment(?)"
	}
	return string(rune('A' + s))
}

// Resolve returns the RAM location of segment seg of digit. digit is a digit
// position within one controller, 0-15; every group of four digits maps to a
// further 16 byte block.
func Resolve(seg Segment, digit uint8) ht16k33.LedLocation {
	com := uint8(seg)
	if com >= commons {
		com -= commons
	}
	if c, ok := commonOverrides[seg]; ok {
		com = c
	}

	row := digit % 4
	if seg > SegmentG {
		row += 4
	}

	addr := com*2 + digit/4*16
	if row > 7 {
		addr++
		row -= 8
	}
	return ht16k33.LedLocation{
		Addr: ht16k33.DisplayDataAddress(addr),
		Data: ht16k33.DisplayData(1 << row),
	}
}

// Decode returns the font mask lit for digit cell in a controller's RAM.
func Decode(ram *[ht16k33.RAMSize]byte, cell uint8) uint16 {
	var mask uint16
	for s := SegmentA; s < NumSegments; s++ {
		if isSet(ram, Resolve(s, cell)) {
			mask |= 1 << s
		}
	}
	return mask
}

func isSet(ram *[ht16k33.RAMSize]byte, loc ht16k33.LedLocation) bool {
	return ram[loc.Addr&(ht16k33.RAMSize-1)]&byte(loc.Data) != 0
}
