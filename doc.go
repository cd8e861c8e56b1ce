// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package alphadisplay is a container for the 14-segment alphanumeric display
// packages.
//
// alphanum prints text on chained quad-digit backpacks, ht16k33 drives the
// LED controller on each backpack over I²C, screen14 emulates backpacks on the
// terminal and segimage draws their content as an image.
package alphadisplay
