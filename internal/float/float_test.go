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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 1, "0"},
		{1, 2, "1"},
		{50.196, 1, "50.2"},
		{194.74, 0, "195"},
		{0.5, 3, "0.5"},
		{100, 0, "100"},
		{-0.01, 1, "0"},
		{-2.25, 2, "-2.25"},
	}
	for _, c := range cases {
		got := Format(c.x, c.precision)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.125, 2); got != 0.13 {
		t.Errorf("Round(0.125, 2) = %g", got)
	}
	if got := Round(53.27, 0); got != 53 {
		t.Errorf("Round(53.27, 0) = %g", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %g", got)
	}
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5) = %g", got)
	}
	if got := Clamp(float32(0.25), 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25) = %g", got)
	}
	if got := Clamp(math.NaN(), 0, 1); got != 0 {
		t.Errorf("Clamp(NaN) = %g", got)
	}
}

func TestToByte(t *testing.T) {
	for i := range 256 {
		x := float64(i) / 255
		if got := ToByte(x); got != uint8(i) {
			t.Errorf("ToByte(%d/255) = %d", i, got)
		}
	}
	if ToByte(2) != 255 || ToByte(-1) != 0 {
		t.Error("out of range values not clamped")
	}
	// 0.5*255 = 127.5 is rounded away from zero
	if got := ToByte(0.5); got != 128 {
		t.Errorf("ToByte(0.5) = %d, want 128", got)
	}
}
