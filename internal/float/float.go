// seehuhn.de/go/hexcolor - parse hex color codes and convert between color spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package float contains helpers for rounding, clamping and printing
// color components.
package float

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros, and a trailing decimal point, are
// removed.  Negative zero is printed as "0".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.ContainsRune(out, '.') {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Round rounds x to the given number of digits after the decimal point.
// Halfway cases are rounded away from zero.
func Round(x float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Round(x*scale) / scale
}

// Clamp restricts x to the range [lo, hi].  NaN is mapped to lo.
func Clamp[T constraints.Float](x, lo, hi T) T {
	if x > hi {
		return hi
	}
	if x >= lo {
		return x
	}
	return lo
}

// ToByte maps a fraction in the range [0, 1] to the nearest integer in
// the range [0, 255].  Values outside [0, 1] are clamped first.
func ToByte(x float64) uint8 {
	return uint8(math.Round(Clamp(x, 0, 1) * 255))
}
