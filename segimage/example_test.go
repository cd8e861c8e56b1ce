// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segimage_test

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/GermanBionicSystems/alphadisplay/alphanum"
	"github.com/GermanBionicSystems/alphadisplay/ht16k33"
	"github.com/GermanBionicSystems/alphadisplay/screen14"
	"github.com/GermanBionicSystems/alphadisplay/segimage"
)

func Example() {
	devs := screen14.NewChain(2, &screen14.Opts{W: io.Discard})
	left, right := devs[0], devs[1]
	d, err := alphanum.New([]alphanum.Controller{left, right}, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.PrintString("12:34.567"); err != nil {
		log.Fatal(err)
	}

	opts := segimage.DefaultOpts
	opts.Labels = []string{"0x70", "0x71"}
	img, err := segimage.Render([][ht16k33.RAMSize]byte{left.DisplayBuffer(), right.DisplayBuffer()}, &opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(img.Bounds() == image.Rect(0, 0, 416, 440))
	// Output:
	// true
}
