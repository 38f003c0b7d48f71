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
	"math"

	"seehuhn.de/go/hexcolor/internal/float"
)

// HSV represents a color in the hue, saturation, value model.
//
// H is the hue in degrees, in the range [0, 360).  S and V are in the range
// [0, 1].
type HSV struct {
	H, S, V float64
}

// HSL represents a color in the hue, saturation, lightness model.
//
// H is the hue in degrees, in the range [0, 360).  S and L are in the range
// [0, 1].
type HSL struct {
	H, S, L float64
}

// CMYK represents a color in the subtractive cyan, magenta, yellow, key
// model.  All components are in the range [0, 1].
type CMYK struct {
	C, M, Y, K float64
}

// RGBAToHSV converts a color to the HSV model.  The alpha channel is
// ignored.
//
// For gray colors (including black and white) the hue and saturation
// are 0.
func RGBAToHSV(c RGBA) HSV {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)

	var s float64
	if hi > 0 {
		s = float64(hi-lo) / float64(hi)
	}
	return HSV{
		H: hue(c, hi, lo),
		S: s,
		V: float64(hi) / 255,
	}
}

// HSVToRGBA converts a color from the HSV model to RGBA, using the given
// alpha value.
//
// The hue is taken modulo 360 degrees.  Saturation and value are clamped
// to [0, 1].
func HSVToRGBA(hsv HSV, alpha uint8) RGBA {
	h := normalizeHue(hsv.H)
	s := float.Clamp(hsv.S, 0, 1)
	v := float.Clamp(hsv.V, 0, 1)

	chroma := v * s
	r, g, b := hueToRGB(h, chroma)
	m := v - chroma
	return RGBA{
		R: float.ToByte(r + m),
		G: float.ToByte(g + m),
		B: float.ToByte(b + m),
		A: alpha,
	}
}

// RGBAToHSL converts a color to the HSL model.  The alpha channel is
// ignored.
//
// For gray colors (including black and white) the hue and saturation
// are 0.
func RGBAToHSL(c RGBA) HSL {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)

	// With L = (hi+lo)/510, the usual denominator 1 - |2L-1| equals
	// (255 - |hi+lo-255|) / 255.
	var s float64
	if hi > lo {
		sum := int(hi) + int(lo)
		s = float64(hi-lo) / float64(255-abs(sum-255))
	}
	return HSL{
		H: hue(c, hi, lo),
		S: s,
		L: (float64(hi) + float64(lo)) / 510,
	}
}

// HSLToRGBA converts a color from the HSL model to RGBA, using the given
// alpha value.
//
// The hue is taken modulo 360 degrees.  Saturation and lightness are
// clamped to [0, 1].
func HSLToRGBA(hsl HSL, alpha uint8) RGBA {
	h := normalizeHue(hsl.H)
	s := float.Clamp(hsl.S, 0, 1)
	l := float.Clamp(hsl.L, 0, 1)

	chroma := (1 - math.Abs(2*l-1)) * s
	r, g, b := hueToRGB(h, chroma)
	m := l - chroma/2
	return RGBA{
		R: float.ToByte(r + m),
		G: float.ToByte(g + m),
		B: float.ToByte(b + m),
		A: alpha,
	}
}

// RGBAToCMYK converts a color to the CMYK model.  CMYK has no alpha
// channel, so alpha is dropped.
//
// Black is represented as C = M = Y = 0, K = 1.
func RGBAToCMYK(c RGBA) CMYK {
	hi := max(c.R, c.G, c.B)
	if hi == 0 {
		return CMYK{K: 1}
	}

	// With K = 1 - hi/255, the expression (1-R-K)/(1-K) simplifies
	// to (hi-R)/hi.
	d := float64(hi)
	return CMYK{
		C: float64(hi-c.R) / d,
		M: float64(hi-c.G) / d,
		Y: float64(hi-c.B) / d,
		K: 1 - d/255,
	}
}

// CMYKToRGBA converts a color from the CMYK model to RGBA, using the given
// alpha value.  All components are clamped to [0, 1].
func CMYKToRGBA(cmyk CMYK, alpha uint8) RGBA {
	k := 1 - float.Clamp(cmyk.K, 0, 1)
	return RGBA{
		R: float.ToByte((1 - float.Clamp(cmyk.C, 0, 1)) * k),
		G: float.ToByte((1 - float.Clamp(cmyk.M, 0, 1)) * k),
		B: float.ToByte((1 - float.Clamp(cmyk.Y, 0, 1)) * k),
		A: alpha,
	}
}

// hue computes the hue of c in degrees, given the largest and smallest
// of the three color channels.
func hue(c RGBA, hi, lo uint8) float64 {
	if hi == lo {
		return 0
	}

	d := float64(hi) - float64(lo)
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	var h float64
	switch hi {
	case c.R:
		h = (g - b) / d
		if h < 0 {
			h += 6
		}
	case c.G:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h
}

// hueToRGB returns the red, green and blue components of a color with
// hue h (in degrees, in [0, 360)) and the given chroma, before the
// lightness offset is added.
func hueToRGB(h, chroma float64) (r, g, b float64) {
	sector := h / 60
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	switch int(sector) % 6 {
	case 0:
		return chroma, x, 0
	case 1:
		return x, chroma, 0
	case 2:
		return 0, chroma, x
	case 3:
		return 0, x, chroma
	case 4:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

// normalizeHue maps h into the range [0, 360).  Non-finite values
// are mapped to 0.
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if math.IsNaN(h) {
		return 0
	}
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
