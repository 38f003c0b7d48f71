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

import "strconv"

// ErrorKind identifies the reason why a hex color code could not be parsed.
type ErrorKind int

// These are the possible values of [ErrorKind].
const (
	// InvalidLength indicates that the number of hex digits, after removing
	// the optional '#', is not 3, 4, 6 or 8.
	InvalidLength ErrorKind = iota + 1

	// InvalidCharacter indicates that the color code contains a character
	// which is not an ASCII hex digit.
	InvalidCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidCharacter:
		return "InvalidCharacter"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is returned by [ParseHex] if a color code is malformed.
type ParseError struct {
	Kind ErrorKind
}

func (err *ParseError) Error() string {
	switch err.Kind {
	case InvalidLength:
		return "invalid hex color length"
	case InvalidCharacter:
		return "invalid character in hex color"
	default:
		return "malformed hex color"
	}
}

// Is reports whether target is a *ParseError of the same kind.
// This allows to use errors.Is(err, ErrInvalidLength).
func (err *ParseError) Is(target error) bool {
	other, ok := target.(*ParseError)
	return ok && other.Kind == err.Kind
}

// These errors can be used with errors.Is to check the kind of a
// [ParseError].
var (
	ErrInvalidLength    error = &ParseError{Kind: InvalidLength}
	ErrInvalidCharacter error = &ParseError{Kind: InvalidCharacter}
)
