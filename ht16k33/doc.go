// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ht16k33 controls a Holtek HT16K33 RAM mapping LED driver over I²C.
//
// The chip holds a 16 byte display RAM. Each byte address selects one half of
// a common line (ROW0-7 or ROW8-15) and each bit one row output. Drivers built
// on top of it, like package alphanum, compute the byte and bit to change and
// call UpdateDisplayBuffer.
//
// By default every buffer change is written through to the chip as a single
// two byte transaction. Set Opts.Buffered to stage changes and write the whole
// RAM with Flush instead.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
package ht16k33
