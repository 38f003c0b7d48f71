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

// Package hexcolor parses hex color codes and converts colors between the
// RGB, HSV, HSL and CMYK color models.
//
// Hex color codes can be given in one of the following forms, with or
// without a leading '#':
//   - RGB: shorthand, each digit d stands for the byte value d*16+d
//   - RGBA: shorthand with alpha
//   - RRGGBB: one byte per channel, alpha is 255
//   - RRGGBBAA: one byte per channel, including alpha
//
// Use [ParseHex] to decode a color code into an [RGBA] value.  The
// functions [RGBAToHSV], [RGBAToHSL] and [RGBAToCMYK] convert an RGBA value
// to the other color models, and [HSVToRGBA], [HSLToRGBA] and [CMYKToRGBA]
// convert back.
//
// In the HSV and HSL models, hue is given in degrees in the range [0, 360),
// and all other components are fractions in the range [0, 1].  CMYK
// components are fractions in the range [0, 1] as well.
//
// Conversions to the floating point models and back are lossy in general.
// A round trip RGBA → HSV → RGBA (and similarly for HSL and CMYK)
// reproduces each channel to within one unit.
//
// All functions in this package are pure and can be used concurrently.
package hexcolor
