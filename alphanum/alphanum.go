// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package alphanum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/alphadisplay/ht16k33"
	"periph.io/x/conn/v3"
)

const (
	// DigitsPerDisplay is the number of digits on one backpack.
	DigitsPerDisplay = 4

	packageName = "alphanum"
)

var (
	// ErrIndexRange is returned by PrintChar for a position outside the
	// content buffer.
	ErrIndexRange = errors.New("alphanum: index out of range")
	// ErrShiftRange is returned by the shift and rotate operations for a
	// count outside 0 to Len().
	ErrShiftRange = errors.New("alphanum: shift count out of range")
	// ErrDisplayRange is returned for a display index outside the display set.
	ErrDisplayRange = errors.New("alphanum: display index out of range")
)

// Controller is the LED driver of one backpack.
//
// *ht16k33.Dev and *screen14.Dev implement it.
type Controller interface {
	// UpdateDisplayBuffer turns the LED at loc on or off.
	UpdateDisplayBuffer(loc ht16k33.LedLocation, on bool) error
}

// Flusher is implemented by controllers that stage buffer updates.
type Flusher interface {
	Flush() error
}

// Indicator is a single LED of a backpack outside the digits.
type Indicator uint8

const (
	// Dot is the decimal point.
	Dot Indicator = iota
	// Colon is the colon between the second and third digits.
	Colon
)

var indicators = [...]ht16k33.LedLocation{
	Dot:   {Addr: 0x03, Data: 0x01},
	Colon: {Addr: 0x01, Data: 0x01},
}

func (i Indicator) String() string {
	switch i {
	case Dot:
		return "Dot"
	case Colon:
		return "Colon"
	default:
		return fmt.Sprintf("Indicator(%d)", uint8(i))
	}
}

// Location returns the RAM location of the indicator.
//
// An unknown indicator has the zero location, which selects no LED.
func (i Indicator) Location() ht16k33.LedLocation {
	if int(i) >= len(indicators) {
		return ht16k33.LedLocation{}
	}
	return indicators[i]
}

// IndicatorOn reports whether indicator i is lit in a controller's RAM. It is
// false for an unknown indicator.
func IndicatorOn(ram *[ht16k33.RAMSize]byte, i Indicator) bool {
	return isSet(ram, i.Location())
}

// Opts holds the configuration of a Dev.
type Opts struct {
	// ContentLen is the number of characters held by the content buffer. It
	// defaults to the number of visible digits and cannot be less.
	ContentLen int
	// Font is the glyph table. It defaults to ASCII.
	Font *Font
}

// Dev is a text display made of chained backpacks.
//
// Dev is not safe for concurrent use.
type Dev struct {
	displays []Controller
	font     *Font
	content  []rune
	scratch  []rune
}

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// New returns a Dev drawing on displays, leftmost first.
//
// Nothing is written to the displays until the first print.
func New(displays []Controller, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if len(displays) == 0 {
		return nil, errors.New("alphanum: at least one display is required")
	}
	for i, c := range displays {
		if c == nil {
			return nil, fmt.Errorf("alphanum: display %d is nil", i)
		}
	}
	visible := DigitsPerDisplay * len(displays)
	n := opts.ContentLen
	if n == 0 {
		n = visible
	}
	if n < visible {
		return nil, fmt.Errorf("alphanum: content length %d is less than the %d visible digits", n, visible)
	}
	font := opts.Font
	if font == nil {
		font = &ASCII
	}
	d := &Dev{
		displays: make([]Controller, len(displays)),
		font:     font,
		content:  make([]rune, n),
		scratch:  make([]rune, n),
	}
	copy(d.displays, displays)
	fill(d.content, ' ')
	return d, nil
}

// NewWithFont returns a Dev drawing glyphs from font.
func NewWithFont(displays []Controller, font *Font, opts *Opts) (*Dev, error) {
	o := Opts{Font: font}
	if opts != nil {
		o.ContentLen = opts.ContentLen
	}
	return New(displays, &o)
}

// Display returns the first display. It is the whole display set when a
// single backpack is used.
func (d *Dev) Display() Controller {
	return d.displays[0]
}

// DisplayAt returns the display at index i. It panics if i is out of range.
func (d *Dev) DisplayAt(i int) Controller {
	return d.displays[i]
}

// Displays returns the display set. The slice is owned by Dev.
func (d *Dev) Displays() []Controller {
	return d.displays
}

// Font returns the glyph table in use.
func (d *Dev) Font() *Font {
	return d.font
}

// Len returns the capacity of the content buffer.
func (d *Dev) Len() int {
	return len(d.content)
}

// Visible returns the number of digits shown.
func (d *Dev) Visible() int {
	return DigitsPerDisplay * len(d.displays)
}

// Content returns the content buffer, including characters not visible.
func (d *Dev) Content() string {
	return string(d.content)
}

// PrintString stores the first Len() characters of s, pads the buffer with
// spaces and draws the visible digits.
func (d *Dev) PrintString(s string) error {
	i := 0
	for _, r := range s {
		if i == len(d.content) {
			break
		}
		d.content[i] = r
		i++
	}
	fill(d.content[i:], ' ')
	return d.render()
}

// Clear blanks the content buffer and the digits. Indicators are left as is.
func (d *Dev) Clear() error {
	return d.PrintString("")
}

// PrintChar stores r at position index and draws that digit only.
//
// A position past the visible digits is stored and shows up once shifted
// into view.
func (d *Dev) PrintChar(r rune, index int) error {
	if index < 0 || index >= len(d.content) {
		return ErrIndexRange
	}
	d.content[index] = r
	if index >= d.Visible() {
		return nil
	}
	return wrap(d.renderAt(index))
}

// ShiftLeft moves the content n positions to the left. The first n
// characters are dropped and n spaces are appended.
//
// Example: "Hi Mom!!" shifted by 3 becomes "Mom!!   ".
func (d *Dev) ShiftLeft(n int) error {
	if err := d.checkShift(n); err != nil {
		return err
	}
	l := len(d.content)
	copy(d.scratch, d.content[n:])
	fill(d.scratch[l-n:], ' ')
	return d.swap()
}

// ShiftRight moves the content n positions to the right. The last n
// characters are dropped and n spaces are prepended.
//
// Example: "Hi Mom!!" shifted by 3 becomes "   Hi Mo".
func (d *Dev) ShiftRight(n int) error {
	if err := d.checkShift(n); err != nil {
		return err
	}
	l := len(d.content)
	fill(d.scratch[:n], ' ')
	copy(d.scratch[n:], d.content[:l-n])
	return d.swap()
}

// RotateLeft moves the content n positions to the left. The first n
// characters wrap around to the end.
//
// Example: "Hi Mom!!" rotated by 3 becomes "Mom!!Hi ".
func (d *Dev) RotateLeft(n int) error {
	if err := d.checkShift(n); err != nil {
		return err
	}
	l := len(d.content)
	copy(d.scratch, d.content[n:])
	copy(d.scratch[l-n:], d.content[:n])
	return d.swap()
}

// RotateRight moves the content n positions to the right. The last n
// characters wrap around to the front.
//
// Example: "Hi Mom!!" rotated by 3 becomes "m!!Hi Mo".
func (d *Dev) RotateRight(n int) error {
	if err := d.checkShift(n); err != nil {
		return err
	}
	l := len(d.content)
	copy(d.scratch, d.content[l-n:])
	copy(d.scratch[n:], d.content[:l-n])
	return d.swap()
}

func (d *Dev) checkShift(n int) error {
	if n < 0 || n > len(d.content) {
		return ErrShiftRange
	}
	return nil
}

// swap makes the scratch buffer the content and draws it.
func (d *Dev) swap() error {
	d.content, d.scratch = d.scratch, d.content
	return d.render()
}

// SetIndicator turns the decimal point or colon of a display on or off. It
// does not touch the content buffer.
func (d *Dev) SetIndicator(display int, i Indicator, on bool) error {
	if display < 0 || display >= len(d.displays) {
		return ErrDisplayRange
	}
	if int(i) >= len(indicators) {
		return fmt.Errorf("alphanum: unknown indicator %s", i)
	}
	return wrap(d.displays[display].UpdateDisplayBuffer(i.Location(), on))
}

// Flush calls Flush on every display that stages updates.
func (d *Dev) Flush() error {
	for _, c := range d.displays {
		if f, ok := c.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return wrap(err)
			}
		}
	}
	return nil
}

// Halt implements conn.Resource.
//
// It halts every display that is a conn.Resource and returns the first error.
func (d *Dev) Halt() error {
	var first error
	for _, c := range d.displays {
		if r, ok := c.(conn.Resource); ok {
			if err := r.Halt(); err != nil && first == nil {
				first = wrap(err)
			}
		}
	}
	return first
}

func (d *Dev) String() string {
	names := make([]string, len(d.displays))
	for i, c := range d.displays {
		if s, ok := c.(fmt.Stringer); ok {
			names[i] = s.String()
		} else {
			names[i] = fmt.Sprintf("%T", c)
		}
	}
	return fmt.Sprintf("%s{%s}", packageName, strings.Join(names, ", "))
}

// render draws every visible digit, left to right.
func (d *Dev) render() error {
	for i := 0; i < d.Visible(); i++ {
		if err := d.renderAt(i); err != nil {
			return wrap(err)
		}
	}
	return nil
}

// renderAt draws the character at content position i on its display.
func (d *Dev) renderAt(i int) error {
	c := d.displays[i/DigitsPerDisplay]
	idx := Index(d.content[i])
	switch idx {
	case DotIndex:
		return c.UpdateDisplayBuffer(Dot.Location(), true)
	case ColonIndex:
		return c.UpdateDisplayBuffer(Colon.Location(), true)
	}
	mask := d.font[idx]
	cell := uint8(i % DigitsPerDisplay)
	for s := SegmentA; s < NumSegments; s++ {
		if err := c.UpdateDisplayBuffer(Resolve(s, cell), mask>>s&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

func fill(r []rune, v rune) {
	for i := range r {
		r[i] = v
	}
}

var _ conn.Resource = &Dev{}
