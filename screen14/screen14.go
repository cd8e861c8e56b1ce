// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen14 emulates a quad 14-segment alphanumeric backpack on the
// terminal (stdout) using ANSI color codes.
//
// It implements alphanum.Controller, so it can stand in for an HT16K33 while
// the real display is still in the mail. Backpacks created together by
// NewChain are drawn side by side.
package screen14

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/alphadisplay/alphanum"
	"github.com/GermanBionicSystems/alphadisplay/ht16k33"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Opts represents the options available for this display.
type Opts struct {
	// W receives the drawing. It defaults to a colorable stdout.
	W       io.Writer
	Palette *ansi256.Palette
	// On and Off are the colors of lit and unlit segments. They default to
	// red and dark grey.
	On  color.NRGBA
	Off color.NRGBA

	_ struct{}
}

var (
	defaultOn  = color.NRGBA{0xff, 0x20, 0x10, 0xff}
	defaultOff = color.NRGBA{0x30, 0x30, 0x30, 0xff}
	background = color.NRGBA{0, 0, 0, 0xff}
)

// art is the pixel map of one digit. Letters are segments, '*' is the centre
// pixel shared by G and I.
var art = [...]string{
	" AAAAA ",
	"FH J KB",
	"F HJK B",
	" GG*II ",
	"E NML C",
	"EN M LC",
	" DDDDD ",
}

const (
	artW       = 7
	colonRow1  = 2
	colonRow2  = 4
	dotRow     = len(art) - 1
	colonAfter = 1
)

// Dev is a quad 14-segment display emulator that outputs to the console.
//
// Changes are staged by UpdateDisplayBuffer and drawn by Flush.
type Dev struct {
	s    *screen
	name string
	ram  [ht16k33.RAMSize]byte
}

// screen is the terminal area shared by a chain of Dev, drawn side by side.
type screen struct {
	w       io.Writer
	palette ansi256.Palette
	on, off color.NRGBA
	devs    []*Dev
	dirty   bool
	drawn   bool
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewChain(1, opts)[0]
}

// NewChain returns n Dev drawn next to each other, left to right, as one
// drawing. Flushing any of them draws them all.
func NewChain(n int, opts *Opts) []*Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	s := &screen{
		w:       opts.W,
		palette: *p,
		on:      opts.On,
		off:     opts.Off,
		dirty:   true,
	}
	if s.w == nil {
		s.w = colorable.NewColorableStdout()
	}
	if s.on == (color.NRGBA{}) {
		s.on = defaultOn
	}
	if s.off == (color.NRGBA{}) {
		s.off = defaultOff
	}
	for i := 0; i < n; i++ {
		name := "Screen14"
		if n > 1 {
			name = fmt.Sprintf("Screen14[%d]", i)
		}
		s.devs = append(s.devs, &Dev{s: s, name: name})
	}
	return s.devs
}

func (d *Dev) String() string {
	return d.name
}

// UpdateDisplayBuffer implements alphanum.Controller.
func (d *Dev) UpdateDisplayBuffer(loc ht16k33.LedLocation, on bool) error {
	addr := loc.Addr & (ht16k33.RAMSize - 1)
	if on {
		d.ram[addr] |= byte(loc.Data)
	} else {
		d.ram[addr] &^= byte(loc.Data)
	}
	d.s.dirty = true
	return nil
}

// DisplayBuffer returns a copy of the emulated display RAM.
func (d *Dev) DisplayBuffer() [ht16k33.RAMSize]byte {
	return d.ram
}

// Glyph returns the segment mask lit on digit cell.
func (d *Dev) Glyph(cell int) uint16 {
	return alphanum.Decode(&d.ram, uint8(cell))
}

// Flush draws the chain over the previous drawing, if anything changed since.
func (d *Dev) Flush() error {
	return d.s.draw()
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.s.w.Write([]byte("\033[0m"))
	return err
}

func (s *screen) draw() error {
	if !s.dirty {
		return nil
	}
	// This code is designed to minimize the amount of memory allocated per call.
	s.buf.Reset()
	if s.drawn {
		fmt.Fprintf(&s.buf, "\033[%dA", len(art))
	}
	for y, line := range art {
		_, _ = s.buf.WriteString("\r\033[0m")
		for _, d := range s.devs {
			dot := alphanum.IndicatorOn(&d.ram, alphanum.Dot)
			colon := alphanum.IndicatorOn(&d.ram, alphanum.Colon)
			for cell := 0; cell < alphanum.DigitsPerDisplay; cell++ {
				mask := d.Glyph(cell)
				for x := 0; x < artW; x++ {
					s.pixel(pixelMask(line[x]), mask)
				}
				switch cell {
				case colonAfter:
					s.indicator(colon && (y == colonRow1 || y == colonRow2))
				case alphanum.DigitsPerDisplay - 1:
					s.indicator(dot && y == dotRow)
				default:
					s.indicator(false)
				}
			}
		}
		_, _ = s.buf.WriteString("\033[0m\n")
	}
	_, err := s.buf.WriteTo(s.w)
	s.drawn = true
	s.dirty = false
	return err
}

// pixelMask returns the segments lighting an art pixel.
func pixelMask(c byte) uint16 {
	switch {
	case c == '*':
		return 1<<alphanum.SegmentG | 1<<alphanum.SegmentI
	case c >= 'A' && c <= 'N':
		return 1 << (c - 'A')
	default:
		return 0
	}
}

func (s *screen) pixel(segs, mask uint16) {
	switch {
	case segs == 0:
		_, _ = io.WriteString(&s.buf, s.palette.Block(background))
	case segs&mask != 0:
		_, _ = io.WriteString(&s.buf, s.palette.Block(s.on))
	default:
		_, _ = io.WriteString(&s.buf, s.palette.Block(s.off))
	}
}

func (s *screen) indicator(lit bool) {
	if lit {
		_, _ = io.WriteString(&s.buf, s.palette.Block(s.on))
	} else {
		_, _ = io.WriteString(&s.buf, s.palette.Block(background))
	}
}

var _ alphanum.Controller = &Dev{}
var _ alphanum.Flusher = &Dev{}
var _ conn.Resource = &Dev{}
