// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segimage draws the content of 14-segment backpacks as an image.
//
// It decodes HT16K33 display RAM, as returned by ht16k33.Dev.DisplayBuffer or
// screen14.Dev.DisplayBuffer, so a snapshot shows exactly what the LEDs show.
package segimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/GermanBionicSystems/alphadisplay/alphanum"
	"github.com/GermanBionicSystems/alphadisplay/ht16k33"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts defines the drawing.
type Opts struct {
	// Cell is the width of one digit in pixels. A digit is twice as tall.
	Cell int
	// On and Off are the colors of lit and unlit segments.
	On  color.NRGBA
	Off color.NRGBA
	// Background fills the rest of the image.
	Background color.NRGBA
	// Labels are captions drawn above each backpack, usually its I²C address.
	// It may be shorter than the number of backpacks.
	Labels []string
	// FontSize of the labels, in points.
	FontSize float64
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Cell:       64,
	On:         color.NRGBA{0xff, 0x20, 0x10, 0xff},
	Off:        color.NRGBA{0x30, 0x30, 0x30, 0xff},
	Background: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	FontSize:   14,
}

// segment is a stroke in a glyph box of 1 wide by 2 tall.
type segment struct {
	x1, y1, x2, y2 float64
}

var segments = [alphanum.NumSegments]segment{
	alphanum.SegmentA: {0, 0, 1, 0},
	alphanum.SegmentB: {1, 0, 1, 1},
	alphanum.SegmentC: {1, 1, 1, 2},
	alphanum.SegmentD: {0, 2, 1, 2},
	alphanum.SegmentE: {0, 1, 0, 2},
	alphanum.SegmentF: {0, 0, 0, 1},
	alphanum.SegmentG: {0, 1, .5, 1},
	alphanum.SegmentH: {0, 0, .5, 1},
	alphanum.SegmentI: {.5, 1, 1, 1},
	alphanum.SegmentJ: {.5, 0, .5, 1},
	alphanum.SegmentK: {1, 0, .5, 1},
	alphanum.SegmentL: {.5, 1, 1, 2},
	alphanum.SegmentM: {.5, 1, .5, 2},
	alphanum.SegmentN: {.5, 1, 0, 2},
}

// inset shortens both ends of a segment so neighbours do not touch.
const inset = 0.1

// Render draws one row of four digits per display RAM buffer.
func Render(bufs [][ht16k33.RAMSize]byte, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if len(bufs) == 0 {
		return nil, errors.New("segimage: no display to draw")
	}
	if opts.Cell <= 0 {
		return nil, fmt.Errorf("segimage: invalid cell width %d", opts.Cell)
	}
	if len(opts.Labels) > len(bufs) {
		return nil, fmt.Errorf("segimage: %d labels for %d displays", len(opts.Labels), len(bufs))
	}
	l := newLayout(opts)
	dc := gg.NewContext(l.width(), l.rowH*len(bufs))
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetLineWidth(l.stroke)
	dc.SetLineCapRound()

	if len(opts.Labels) != 0 {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("segimage: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: opts.FontSize}))
	}

	for row := range bufs {
		ram := &bufs[row]
		top := float64(row * l.rowH)
		if row < len(opts.Labels) {
			dc.SetColor(opts.On)
			dc.DrawStringAnchored(opts.Labels[row], l.pad, top+l.band/2, 0, 0.5)
		}
		top += l.band + l.pad
		for cell := 0; cell < alphanum.DigitsPerDisplay; cell++ {
			mask := alphanum.Decode(ram, uint8(cell))
			left := l.pad + float64(cell)*l.pitch
			for s, seg := range segments {
				dc.SetColor(opts.Off)
				if mask>>s&1 != 0 {
					dc.SetColor(opts.On)
				}
				dx, dy := (seg.x2-seg.x1)*inset, (seg.y2-seg.y1)*inset
				dc.DrawLine(
					left+(seg.x1+dx)*l.cell, top+(seg.y1+dy)*l.cell,
					left+(seg.x2-dx)*l.cell, top+(seg.y2-dy)*l.cell)
				dc.Stroke()
			}
		}

		// Colon between the second and third digits, dot after the last one.
		x := l.pad + l.pitch + l.cell + l.gap/2
		l.dot(dc, x, top+l.cell*2/3, alphanum.IndicatorOn(ram, alphanum.Colon), opts)
		l.dot(dc, x, top+l.cell*4/3, alphanum.IndicatorOn(ram, alphanum.Colon), opts)
		x += 2 * l.pitch
		l.dot(dc, x, top+2*l.cell, alphanum.IndicatorOn(ram, alphanum.Dot), opts)
	}
	return dc.Image(), nil
}

// SavePNG writes img as a PNG file.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("segimage: %w", err)
	}
	return nil
}

// layout holds the dimensions of the drawing, in pixels.
type layout struct {
	cell   float64
	gap    float64
	pad    float64
	pitch  float64
	stroke float64
	band   float64
	rowH   int
}

func newLayout(opts *Opts) layout {
	l := layout{cell: float64(opts.Cell)}
	l.gap = l.cell / 2
	l.pad = l.cell / 2
	l.pitch = l.cell + l.gap
	l.stroke = l.cell / 8
	if len(opts.Labels) != 0 {
		l.band = 2 * opts.FontSize
	}
	l.rowH = int(l.band + 2*l.cell + 2*l.pad)
	return l
}

func (l *layout) width() int {
	return int(l.pad + alphanum.DigitsPerDisplay*l.pitch)
}

func (l *layout) dot(dc *gg.Context, x, y float64, on bool, opts *Opts) {
	dc.SetColor(opts.Off)
	if on {
		dc.SetColor(opts.On)
	}
	dc.DrawCircle(x, y, l.stroke*0.75)
	dc.Fill()
}
