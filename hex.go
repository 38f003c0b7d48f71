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

import "strings"

// ParseHex decodes a hex color code.
//
// The code consists of optional leading '#' characters, followed by 3, 4, 6 or 8 hex digits
// in the forms RGB, RGBA, RRGGBB or RRGGBBAA.  In the shorthand forms, each
// digit d is expanded to the byte d*16+d.  If no alpha digits are given,
// alpha is set to 255.  Hex digits are case insensitive.  No other
// characters, including white space, are allowed.
//
// If the code is malformed, the returned error is a *[ParseError].  The
// length is checked first; if it is valid, all characters are checked for
// being hex digits.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimLeft(s, "#")

	n := len(s)
	switch n {
	case 3, 4, 6, 8:
		// pass
	default:
		return RGBA{}, &ParseError{Kind: InvalidLength}
	}

	var digits [8]uint8
	valid := true
	for i := range n {
		d, ok := hexDigit(s[i])
		if !ok {
			valid = false
			continue
		}
		digits[i] = d
	}
	if !valid {
		return RGBA{}, &ParseError{Kind: InvalidCharacter}
	}

	c := RGBA{A: 0xff}
	switch n {
	case 3, 4:
		c.R = digits[0] * 0x11
		c.G = digits[1] * 0x11
		c.B = digits[2] * 0x11
		if n == 4 {
			c.A = digits[3] * 0x11
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if n == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	}
	return c, nil
}

// MustParseHex is like [ParseHex] but panics if the color code is
// malformed.  It is intended for initializing package-level colors
// from constant strings.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic("hexcolor: " + s + ": " + err.Error())
	}
	return c
}

// hexDigit returns the value of an ASCII hex digit.
func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
