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

package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/hexcolor"
	"seehuhn.de/go/hexcolor/internal/buildinfo"
	"seehuhn.de/go/hexcolor/internal/float"
)

var (
	swatchArg    = flag.String("swatch", "", "write a color swatch to the PNG `file`")
	noPreviewArg = flag.Bool("no-preview", false, "never show the color preview")
	digitsArg    = flag.Int("digits", 0, "number of decimal `digits` for HSV, HSL and CMYK")
	versionArg   = flag.Bool("version", false, "print the version and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hexcolor \u2014 show a hex color code in RGBA, HSL, HSV and CMYK\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("hexcolor"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  hexcolor [options] <color>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  color   3, 4, 6 or 8 hex digits, optionally preceded by '#'\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hexcolor fff\n")
		fmt.Fprintf(os.Stderr, "  hexcolor '#ffaa00cc'\n")
		fmt.Fprintf(os.Stderr, "  hexcolor -swatch orange.png ffaa00\n")
	}
	flag.Parse()

	if *versionArg {
		v := buildinfo.Version()
		if v == "" {
			v = "unknown"
		}
		fmt.Println("hexcolor", v)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "hexcolor:", err)
		os.Exit(1)
	}
}

func run(input string) error {
	c, err := hexcolor.ParseHex(input)
	if err != nil {
		return fmt.Errorf("%q: %w", input, err)
	}

	preview := !*noPreviewArg && term.IsTerminal(int(os.Stdout.Fd()))
	err = report(os.Stdout, input, c, preview, *digitsArg)
	if err != nil {
		return err
	}

	if *swatchArg != "" {
		err = writeSwatch(*swatchArg, c)
		if err != nil {
			return err
		}
	}
	return nil
}

// report prints c in all supported color models.
// Hue is given in degrees, all other components in percent.
func report(w io.Writer, input string, c hexcolor.RGBA, preview bool, digits int) error {
	pct := func(x float64) string {
		return float.Format(float.Round(100*x, digits), digits) + "%"
	}
	deg := func(x float64) string {
		return float.Format(float.Round(x, digits), digits) + "°"
	}

	hsl := hexcolor.RGBAToHSL(c)
	hsv := hexcolor.RGBAToHSV(c)
	cmyk := hexcolor.RGBAToCMYK(c)

	upper := cases.Upper(language.Und)
	digitsIn := upper.String(strings.TrimLeft(input, "#"))

	var b strings.Builder
	fmt.Fprintf(&b, "input: #%s\n", digitsIn)
	fmt.Fprintf(&b, "hex:   %s\n", c.Hex())
	if preview {
		fmt.Fprintf(&b, "color: \x1b[48;2;%d;%d;%dm      \x1b[0m\n", c.R, c.G, c.B)
	}

	fmt.Fprintf(&b, "\nRGBA: rgba(%d, %d, %d, %d)\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(&b, "  red:        %d\n", c.R)
	fmt.Fprintf(&b, "  green:      %d\n", c.G)
	fmt.Fprintf(&b, "  blue:       %d\n", c.B)
	fmt.Fprintf(&b, "  alpha:      %d\n", c.A)

	fmt.Fprintf(&b, "\nHSL: hsl(%s, %s, %s)\n", deg(hsl.H), pct(hsl.S), pct(hsl.L))
	fmt.Fprintf(&b, "  hue:        %s\n", deg(hsl.H))
	fmt.Fprintf(&b, "  saturation: %s\n", pct(hsl.S))
	fmt.Fprintf(&b, "  lightness:  %s\n", pct(hsl.L))

	fmt.Fprintf(&b, "\nHSV: hsv(%s, %s, %s)\n", deg(hsv.H), pct(hsv.S), pct(hsv.V))
	fmt.Fprintf(&b, "  hue:        %s\n", deg(hsv.H))
	fmt.Fprintf(&b, "  saturation: %s\n", pct(hsv.S))
	fmt.Fprintf(&b, "  value:      %s\n", pct(hsv.V))

	fmt.Fprintf(&b, "\nCMYK: cmyk(%s, %s, %s, %s)\n", pct(cmyk.C), pct(cmyk.M), pct(cmyk.Y), pct(cmyk.K))
	fmt.Fprintf(&b, "  cyan:       %s\n", pct(cmyk.C))
	fmt.Fprintf(&b, "  magenta:    %s\n", pct(cmyk.M))
	fmt.Fprintf(&b, "  yellow:     %s\n", pct(cmyk.Y))
	fmt.Fprintf(&b, "  black:      %s\n", pct(cmyk.K))

	_, err := io.WriteString(w, b.String())
	return err
}

const swatchSize = 64

// writeSwatch writes a square PNG image filled with c.
func writeSwatch(fname string, c hexcolor.RGBA) (err error) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	dst := image.NewNRGBA(image.Rect(0, 0, swatchSize, swatchSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
	}()

	err = png.Encode(fd, dst)
	if err != nil {
		return fmt.Errorf("swatch %s: %w", fname, err)
	}
	return nil
}
