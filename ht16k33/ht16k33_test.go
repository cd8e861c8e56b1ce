// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ht16k33

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

var clearRAM = append([]byte{0x00}, make([]byte, RAMSize)...)

func initOps(addr uint16, dimming, setup byte) []i2ctest.IO {
	return []i2ctest.IO{
		{Addr: addr, W: []byte{0x21}},
		{Addr: addr, W: []byte{0xe0 | dimming}},
		{Addr: addr, W: []byte{setup}},
		{Addr: addr, W: clearRAM},
	}
}

func TestNew(t *testing.T) {
	bus := &i2ctest.Playback{Ops: initOps(DefaultAddr, 0x0f, 0x81), DontPanic: true}
	dev, err := New(bus, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
	if s := dev.String(); len(s) == 0 {
		t.Error("empty string")
	}
}

func TestNewOpts(t *testing.T) {
	bus := &i2ctest.Playback{Ops: initOps(Addr2, 0x08, 0x85), DontPanic: true}
	_, err := New(bus, Addr2, &Opts{Intensity: 0x80, Blink: physic.Hertz})
	if err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestNewBadBlink(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	if _, err := New(bus, DefaultAddr, &Opts{Blink: 3 * physic.Hertz}); !errors.Is(err, ErrBlinkRate) {
		t.Errorf("expected ErrBlinkRate, got %v", err)
	}
}

func TestNewBusError(t *testing.T) {
	// Nothing recorded: the first transaction fails.
	bus := &i2ctest.Playback{DontPanic: true}
	_, err := New(bus, DefaultAddr, nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdateDisplayBuffer(t *testing.T) {
	record := &i2ctest.Record{}
	dev, err := New(record, Addr1, nil)
	if err != nil {
		t.Fatal(err)
	}
	record.Ops = nil

	steps := []struct {
		loc LedLocation
		on  bool
	}{
		{LedLocation{Addr: 0, Data: 0x01}, true},
		{LedLocation{Addr: 0, Data: 0x10}, true},
		{LedLocation{Addr: 2, Data: 0x80}, true},
		{LedLocation{Addr: 0, Data: 0x01}, false},
		// Addresses beyond the RAM wrap onto it.
		{LedLocation{Addr: 0x12, Data: 0x04}, true},
	}
	for _, s := range steps {
		if err := dev.UpdateDisplayBuffer(s.loc, s.on); err != nil {
			t.Fatal(err)
		}
	}
	expected := []i2ctest.IO{
		{Addr: Addr1, W: []byte{0x00, 0x01}},
		{Addr: Addr1, W: []byte{0x00, 0x11}},
		{Addr: Addr1, W: []byte{0x02, 0x80}},
		{Addr: Addr1, W: []byte{0x00, 0x10}},
		{Addr: Addr1, W: []byte{0x02, 0x84}},
	}
	if diff := cmp.Diff(expected, record.Ops); diff != "" {
		t.Errorf("unexpected transactions (-want +got):\n%s", diff)
	}
	want := [RAMSize]byte{0x10, 0, 0x84}
	if got := dev.DisplayBuffer(); got != want {
		t.Errorf("DisplayBuffer() = %#v, want %#v", got, want)
	}
}

func TestBuffered(t *testing.T) {
	record := &i2ctest.Record{}
	dev, err := New(record, DefaultAddr, &Opts{Intensity: 0xff, Buffered: true})
	if err != nil {
		t.Fatal(err)
	}
	record.Ops = nil
	if dev.Dirty() {
		t.Error("fresh device is dirty")
	}
	_ = dev.UpdateDisplayBuffer(LedLocation{Addr: 4, Data: 0x02}, true)
	_ = dev.UpdateDisplayBuffer(LedLocation{Addr: 15, Data: 0x40}, true)
	if len(record.Ops) != 0 {
		t.Fatalf("buffered update reached the bus: %v", record.Ops)
	}
	if !dev.Dirty() {
		t.Error("expected dirty buffer")
	}
	if err := dev.Flush(); err != nil {
		t.Fatal(err)
	}
	w := make([]byte, 1+RAMSize)
	w[1+4] = 0x02
	w[1+15] = 0x40
	if diff := cmp.Diff([]i2ctest.IO{{Addr: DefaultAddr, W: w}}, record.Ops); diff != "" {
		t.Errorf("unexpected flush (-want +got):\n%s", diff)
	}
	if dev.Dirty() {
		t.Error("buffer still dirty after Flush")
	}

	dev.ClearDisplayBuffer()
	if got := dev.DisplayBuffer(); got != [RAMSize]byte{} {
		t.Errorf("buffer not cleared: %#v", got)
	}
}

func TestReadDisplayRAM(t *testing.T) {
	ram := make([]byte, RAMSize)
	ram[0] = 0x3f
	ram[9] = 0x81
	ops := append(initOps(DefaultAddr, 0x0f, 0x81), i2ctest.IO{Addr: DefaultAddr, W: []byte{0x00}, R: ram})
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	dev, err := New(bus, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := dev.ReadDisplayRAM()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ram, got[:]); diff != "" {
		t.Errorf("unexpected RAM (-want +got):\n%s", diff)
	}
}

func TestSettings(t *testing.T) {
	ops := append(initOps(DefaultAddr, 0x0f, 0x81),
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0xe0}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0xe7}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0xef}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x83}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x87}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x81}},
		// Halt: display off keeps the blink bits, then standby.
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x80}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x20}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x21}},
		i2ctest.IO{Addr: DefaultAddr, W: []byte{0x81}},
	)
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	dev, err := New(bus, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-5, 0x7f, 0x1ff} {
		if err := dev.SetIntensity(display.Intensity(i)); err != nil {
			t.Error(err)
		}
	}
	for _, f := range []physic.Frequency{2 * physic.Hertz, 500 * physic.MilliHertz, 0} {
		if err := dev.SetBlink(f); err != nil {
			t.Error(err)
		}
	}
	if err := dev.SetBlink(10 * physic.Hertz); !errors.Is(err, ErrBlinkRate) {
		t.Errorf("expected ErrBlinkRate, got %v", err)
	}
	if err := dev.Halt(); err != nil {
		t.Error(err)
	}
	if err := dev.Power(true); err != nil {
		t.Error(err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestPowerBusError(t *testing.T) {
	bus := &i2ctest.Playback{Ops: initOps(DefaultAddr, 0x0f, 0x81), DontPanic: true}
	dev, err := New(bus, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Nothing more is recorded: every following transaction fails.
	if err := dev.Power(false); err == nil {
		t.Fatal("expected error")
	}
	if !dev.on {
		t.Error("failed Power(false) marked the display off")
	}
	if err := dev.SetBlink(2 * physic.Hertz); err == nil {
		t.Fatal("expected error")
	}
	if dev.blink != 0 || dev.opts.Blink != 0 {
		t.Error("failed SetBlink changed the blink rate")
	}

	// The display is still on, so the blink command keeps it on.
	bus.Ops = append(bus.Ops, i2ctest.IO{Addr: DefaultAddr, W: []byte{0x83}})
	if err := dev.SetBlink(2 * physic.Hertz); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func TestErrorPrefix(t *testing.T) {
	bus := &i2ctest.Playback{Ops: initOps(DefaultAddr, 0x0f, 0x81), DontPanic: true}
	dev, err := New(bus, DefaultAddr, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = dev.UpdateDisplayBuffer(LedLocation{Addr: 1, Data: 1}, true)
	if err == nil {
		t.Fatal("expected error")
	}
	if s := err.Error(); s[:len(packageName)] != packageName {
		t.Errorf("error not prefixed: %q", s)
	}
	if wrap(err) != err {
		t.Error("wrap prefixed twice")
	}
}

func TestLedLocationString(t *testing.T) {
	data := []struct {
		l    LedLocation
		want string
	}{
		{LedLocation{Addr: 2, Data: 0x10}, "{Addr: 0x02, Data: 0x10}"},
		{LedLocation{Addr: 0, Data: 1}, "{Addr: 0x00, Data: 0x01}"},
		{LedLocation{Addr: 0x3a, Data: 0x80}, "{Addr: 0x3a, Data: 0x80}"},
	}
	for _, d := range data {
		if s := d.l.String(); s != d.want {
			t.Errorf("unexpected %q, want %q", s, d.want)
		}
	}
}
