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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"#FA3", RGBA{255, 170, 51, 255}},
		{"FA3", RGBA{255, 170, 51, 255}},
		{"#fa3", RGBA{255, 170, 51, 255}},
		{"#FA3C", RGBA{255, 170, 51, 204}},
		{"#FFAABB", RGBA{255, 170, 187, 255}},
		{"FFAABB", RGBA{255, 170, 187, 255}},
		{"#ffaabb", RGBA{255, 170, 187, 255}},
		{"#FfAaBb", RGBA{255, 170, 187, 255}},
		{"#FFAABBCC", RGBA{255, 170, 187, 204}},
		{"#FFAA33CC", RGBA{255, 170, 51, 204}},
		{"#FFAA33", RGBA{255, 170, 51, 255}},
		{"000", RGBA{0, 0, 0, 255}},
		{"0000", RGBA{0, 0, 0, 0}},
		{"#123456", RGBA{0x12, 0x34, 0x56, 0xff}},
		{"#01234567", RGBA{0x01, 0x23, 0x45, 0x67}},
		{"#89abcdef", RGBA{0x89, 0xab, 0xcd, 0xef}},
		{"##FFF", RGBA{255, 255, 255, 255}},
		{"###FFAABB", RGBA{255, 170, 187, 255}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHex(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	cases := []struct {
		in   string
		want ErrorKind
	}{
		{"", InvalidLength},
		{"#", InvalidLength},
		{"#FF", InvalidLength},
		{"FFFFF", InvalidLength},
		{"#FFAABBC", InvalidLength},
		{"#FFAABBCCD", InvalidLength},
		{" #FFF", InvalidLength},
		{"#FFF\n", InvalidCharacter},
		{"#F#F", InvalidCharacter},
		{"###", InvalidLength},
		{"#GGAABB", InvalidCharacter},
		{"#GGHHII", InvalidCharacter},
		{"#FFAAB ", InvalidCharacter},
		{"#FFAABBCG", InvalidCharacter},
		{"0x0F", InvalidCharacter},
		{"#١٢٣", InvalidCharacter}, // Arabic-Indic digits
		{"#ＦＦＦ", InvalidLength},    // three 3-byte runes
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHex(c.in)
			if err == nil {
				t.Fatalf("ParseHex(%q) = %v, want error", c.in, got)
			}
			if got != (RGBA{}) {
				t.Errorf("ParseHex(%q) returned partial result %v", c.in, got)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("wrong error type %T", err)
			}
			if perr.Kind != c.want {
				t.Errorf("got %s, want %s", perr.Kind, c.want)
			}
		})
	}
}

// TestShorthandExpansion checks all 3-digit codes against the d*16+d rule.
func TestShorthandExpansion(t *testing.T) {
	const digits = "0123456789ABCDEF"
	for r := range 16 {
		for g := range 16 {
			for b := range 16 {
				in := "#" + string([]byte{digits[r], digits[g], digits[b]})
				got, err := ParseHex(in)
				if err != nil {
					t.Fatal(err)
				}
				want := RGBA{uint8(r*16 + r), uint8(g*16 + g), uint8(b*16 + b), 255}
				if got != want {
					t.Errorf("%s: got %v, want %v", in, got, want)
				}
			}
		}
	}
}

func TestParseErrorIs(t *testing.T) {
	_, err := ParseHex("#FF")
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("%v is not ErrInvalidLength", err)
	}
	if errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("%v matches ErrInvalidCharacter", err)
	}

	_, err = ParseHex("#GGAABB")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("%v is not ErrInvalidCharacter", err)
	}
	if err.Error() != "invalid character in hex color" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	if s := InvalidLength.String(); s != "InvalidLength" {
		t.Error(s)
	}
	if s := InvalidCharacter.String(); s != "InvalidCharacter" {
		t.Error(s)
	}
	if s := ErrorKind(7).String(); s != "ErrorKind(7)" {
		t.Error(s)
	}
}

func TestMustParseHex(t *testing.T) {
	if c := MustParseHex("#0f0"); c != Opaque(0, 255, 0) {
		t.Errorf("got %v", c)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseHex did not panic")
		}
	}()
	MustParseHex("#0f")
}

func FuzzParseHex(f *testing.F) {
	f.Add("#FA3")
	f.Add("#FA3C")
	f.Add("FFAABB")
	f.Add("#ffaabbcc")
	f.Add("#GGAABB")
	f.Add("")
	f.Add("##FFF")

	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseHex(s)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("wrong error type %T", err)
			}
			if perr.Kind != InvalidLength && perr.Kind != InvalidCharacter {
				t.Fatalf("unexpected error kind %d", perr.Kind)
			}
			return
		}

		c2, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatal(err)
		}
		if c != c2 {
			t.Errorf("%q: %v != %v", s, c, c2)
		}
	})
}
