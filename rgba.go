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

package hexcolor

import (
	"fmt"
	stdcolor "image/color"
)

// RGBA is a color with 8-bit red, green, blue and alpha channels.
// The channels are not alpha-premultiplied; an alpha value of 255
// means fully opaque.
//
// RGBA values are comparable, two colors are equal if and only if all
// four channels are equal.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque returns the fully opaque color with the given red, green and blue
// channels.
func Opaque(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns the alpha-premultiplied red, green, blue and alpha values
// for the color.
// This implements the [image/color.Color] interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Hex formats the color as a hex color code.  The result has the form
// "#RRGGBB" for opaque colors and "#RRGGBBAA" otherwise.
// Hex digits are upper case.
func (c RGBA) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c RGBA) String() string {
	return fmt.Sprintf("RGBA{%d, %d, %d, %d}", c.R, c.G, c.B, c.A)
}

// HSV is a shorthand for [RGBAToHSV].
func (c RGBA) HSV() HSV {
	return RGBAToHSV(c)
}

// HSL is a shorthand for [RGBAToHSL].
func (c RGBA) HSL() HSL {
	return RGBAToHSL(c)
}

// CMYK is a shorthand for [RGBAToCMYK].
func (c RGBA) CMYK() CMYK {
	return RGBAToCMYK(c)
}

// Model converts arbitrary colors to [RGBA].
var Model = stdcolor.ModelFunc(rgbaModel)

func rgbaModel(c stdcolor.Color) stdcolor.Color {
	if c, ok := c.(RGBA); ok {
		return c
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}
