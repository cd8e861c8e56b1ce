// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ht16k33

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddr is the address with no address jumpers bridged.
	DefaultAddr uint16 = 0x70
	// Addr1 is the address with A0 bridged.
	Addr1 uint16 = 0x71
	// Addr2 is the address with A1 bridged.
	Addr2 uint16 = 0x72
	// Addr3 is the address with A0 and A1 bridged.
	Addr3 uint16 = 0x73

	// RAMSize is the number of bytes of display RAM.
	RAMSize = 16

	packageName = "ht16k33"
)

const (
	_CMD_RAM     byte = 0x00
	_CMD_SYSTEM  byte = 0x20
	_CMD_DISPLAY byte = 0x80
	_CMD_DIMMING byte = 0xe0

	_SYSTEM_OSCILLATOR_ON byte = 0x01
	_DISPLAY_ON           byte = 0x01
	_BLINK_SHIFT               = 1
	_DIMMING_STEPS             = 16
)

var (
	// ErrBlinkRate is returned when a blink frequency other than the ones the
	// chip supports is requested.
	ErrBlinkRate = errors.New("ht16k33: unsupported blink rate")

	// blinkRates maps the supported frequencies to the display setup bits.
	blinkRates = map[physic.Frequency]byte{
		0:                       0,
		2 * physic.Hertz:        1,
		1 * physic.Hertz:        2,
		500 * physic.MilliHertz: 3,
	}
)

// DisplayDataAddress is a display RAM byte address.
type DisplayDataAddress uint8

// DisplayData is a bit mask within one display RAM byte.
type DisplayData uint8

// LedLocation identifies exactly one LED: a RAM byte and the bit in it.
type LedLocation struct {
	Addr DisplayDataAddress
	Data DisplayData
}

func (l LedLocation) String() string {
	return fmt.Sprintf("{Addr: 0x%02x, Data: 0x%02x}", byte(l.Addr), byte(l.Data))
}

// Opts holds the start-up configuration of the chip.
type Opts struct {
	// Intensity is the initial brightness, 0-255. It is reduced to the 16
	// dimming steps of the chip.
	Intensity display.Intensity
	// Blink is the initial blink frequency. 0 disables blinking.
	Blink physic.Frequency
	// Buffered stages UpdateDisplayBuffer changes until Flush is called.
	Buffered bool
}

// DefaultOpts is full brightness, no blinking, write-through updates.
var DefaultOpts = Opts{Intensity: 0xff}

// Dev is a handle to one HT16K33.
type Dev struct {
	d *i2c.Dev

	mu    sync.Mutex
	opts  Opts
	blink byte
	on    bool
	dirty bool
	ram   [RAMSize]byte
}

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// New returns a Dev on the given bus and address, with the oscillator on, the
// display enabled and its RAM cleared.
func New(bus i2c.Bus, address uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	blink, ok := blinkRates[opts.Blink]
	if !ok {
		return nil, ErrBlinkRate
	}
	dev := &Dev{
		d:     &i2c.Dev{Bus: bus, Addr: address},
		opts:  *opts,
		blink: blink,
	}
	if err := dev.init(); err != nil {
		return nil, err
	}
	return dev, nil
}

func (dev *Dev) init() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	err := dev.d.Tx([]byte{_CMD_SYSTEM | _SYSTEM_OSCILLATOR_ON}, nil)
	if err == nil {
		err = dev.d.Tx([]byte{_CMD_DIMMING | dimming(dev.opts.Intensity)}, nil)
	}
	if err == nil {
		err = dev.d.Tx([]byte{displaySetup(dev.blink, true)}, nil)
	}
	if err == nil {
		dev.on = true
		err = dev.flush()
	}
	return wrap(err)
}

// dimming reduces an Intensity to one of the 16 duty cycle steps.
func dimming(i display.Intensity) byte {
	if i < 0 {
		i = 0
	} else if i > 0xff {
		i = 0xff
	}
	return byte(i) / (256 / _DIMMING_STEPS)
}

// displaySetup returns the display setup command for a blink setting and
// display state.
func displaySetup(blink byte, on bool) byte {
	b := _CMD_DISPLAY | blink<<_BLINK_SHIFT
	if on {
		b |= _DISPLAY_ON
	}
	return b
}

// UpdateDisplayBuffer turns the LED at loc on or off.
//
// Only the low four bits of loc.Addr are used. Unless the device is buffered
// the modified RAM byte is written to the chip before returning.
func (dev *Dev) UpdateDisplayBuffer(loc LedLocation, on bool) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	addr := byte(loc.Addr) & (RAMSize - 1)
	if on {
		dev.ram[addr] |= byte(loc.Data)
	} else {
		dev.ram[addr] &^= byte(loc.Data)
	}
	if dev.opts.Buffered {
		dev.dirty = true
		return nil
	}
	return wrap(dev.d.Tx([]byte{_CMD_RAM | addr, dev.ram[addr]}, nil))
}

// Flush writes the whole RAM mirror to the chip.
func (dev *Dev) Flush() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return wrap(dev.flush())
}

func (dev *Dev) flush() error {
	w := make([]byte, 1+RAMSize)
	w[0] = _CMD_RAM
	copy(w[1:], dev.ram[:])
	if err := dev.d.Tx(w, nil); err != nil {
		return err
	}
	dev.dirty = false
	return nil
}

// Dirty reports whether a buffered device holds changes not yet flushed.
func (dev *Dev) Dirty() bool {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.dirty
}

// ClearDisplayBuffer turns off every LED in the RAM mirror. Call Flush to
// apply it.
func (dev *Dev) ClearDisplayBuffer() {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	dev.ram = [RAMSize]byte{}
	dev.dirty = true
}

// DisplayBuffer returns a copy of the RAM mirror.
func (dev *Dev) DisplayBuffer() [RAMSize]byte {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return dev.ram
}

// ReadDisplayRAM reads the display RAM back from the chip.
func (dev *Dev) ReadDisplayRAM() ([RAMSize]byte, error) {
	var ram [RAMSize]byte
	dev.mu.Lock()
	defer dev.mu.Unlock()
	err := dev.d.Tx([]byte{_CMD_RAM}, ram[:])
	return ram, wrap(err)
}

// SetIntensity sets the display brightness. 0 is the dimmest step, not off.
func (dev *Dev) SetIntensity(intensity display.Intensity) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	err := dev.d.Tx([]byte{_CMD_DIMMING | dimming(intensity)}, nil)
	if err == nil {
		dev.opts.Intensity = intensity
	}
	return wrap(err)
}

// SetBlink sets the blink frequency of the whole display. Supported values
// are 0 (off), 2Hz, 1Hz and 0.5Hz.
func (dev *Dev) SetBlink(f physic.Frequency) error {
	blink, ok := blinkRates[f]
	if !ok {
		return ErrBlinkRate
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.d.Tx([]byte{displaySetup(blink, dev.on)}, nil); err != nil {
		return wrap(err)
	}
	dev.blink = blink
	dev.opts.Blink = f
	return nil
}

// Power turns the oscillator and display on, or the display and oscillator
// off. RAM content is retained while powered off.
func (dev *Dev) Power(on bool) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	setup := displaySetup(dev.blink, on)
	var err error
	if on {
		err = dev.d.Tx([]byte{_CMD_SYSTEM | _SYSTEM_OSCILLATOR_ON}, nil)
		if err == nil {
			err = dev.d.Tx([]byte{setup}, nil)
		}
	} else {
		err = dev.d.Tx([]byte{setup}, nil)
		if err == nil {
			err = dev.d.Tx([]byte{_CMD_SYSTEM}, nil)
		}
	}
	if err != nil {
		return wrap(err)
	}
	dev.on = on
	return nil
}

// Halt implements conn.Resource.
//
// It turns the display off and puts the chip in standby.
func (dev *Dev) Halt() error {
	return dev.Power(false)
}

func (dev *Dev) String() string {
	return fmt.Sprintf("%s{%s}", packageName, dev.d)
}

var _ conn.Resource = &Dev{}
