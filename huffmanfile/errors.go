/*
Copyright (c) 2017 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/


package huffmanfile

import "io"
import "github.com/pkg/errors"

var (
	// ErrMissingSentinel is returned by WriteHeader when the map has no EndOfStream entry.
	ErrMissingSentinel = errors.New("huffmanfile: frequency map has no EndOfStream entry")

	// ErrMalformedHeader is returned when the header text does not parse.
	ErrMalformedHeader = errors.New("huffmanfile: malformed header")

	// ErrTruncatedStream is returned when the body ends before EndOfStream is decoded.
	ErrTruncatedStream = errors.New("huffmanfile: truncated stream")

	// ErrUnknownSymbol is returned by Encode for a byte that has no code.
	ErrUnknownSymbol = errors.New("huffmanfile: symbol has no code")

	// ErrCodeTooLong is returned when a code does not fit the 64 bit word of the bit writer.
	ErrCodeTooLong = errors.New("huffmanfile: code longer than 64 bits")

	// ErrInvalidFrequencies is returned for an empty tree or a map with a symbol
	// outside the alphabet or a count below 1.
	ErrInvalidFrequencies = errors.New("huffmanfile: invalid frequency map")
)

func isEOF(e error) bool {
	return e == io.EOF || e == io.ErrUnexpectedEOF
}
