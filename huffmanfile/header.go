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

import "bytes"
import "io"
import "strconv"
import "github.com/pkg/errors"

/*
The header is text:

	<N> <c1><f1> <c2><f2> ... <cN><fN>

N counts the entries written, EndOfStream excluded. Each entry is the raw
symbol byte directly followed by its decimal count and one space. Entries
are written in ascending symbol order. EndOfStream is implied with count 1.
*/

// WriteHeader writes the header for freq to w. Nothing is written if freq
// does not hold EndOfStream.
func WriteHeader(w io.Writer, freq FrequencyMap) error {
	if _, ok := freq[EndOfStream]; !ok {
		return errors.WithStack(ErrMissingSentinel)
	}
	syms := freq.Symbols()
	buf := new(bytes.Buffer)
	buf.WriteString(strconv.Itoa(len(syms) - 1))
	buf.WriteByte(' ')
	for _, s := range syms {
		if s == EndOfStream {
			continue
		}
		if !s.IsByte() {
			return errors.Wrapf(ErrInvalidFrequencies, "symbol %d outside alphabet", int(s))
		}
		if freq[s] <= 0 {
			return errors.Wrapf(ErrInvalidFrequencies, "symbol %v has count %d", s, freq[s])
		}
		buf.WriteByte(byte(s))
		buf.WriteString(strconv.Itoa(freq[s]))
		buf.WriteByte(' ')
	}
	_, e := w.Write(buf.Bytes())
	return errors.WithStack(e)
}

// ReadHeader parses a header written by WriteHeader and puts EndOfStream
// back with count 1. r is left at the first byte of the body.
func ReadHeader(r io.ByteReader) (FrequencyMap, error) {
	n, e := readNumber(r, "symbol count")
	if e != nil {
		return nil, e
	}
	if n > AlphabetSize-1 {
		return nil, errors.Wrapf(ErrMalformedHeader, "symbol count %d", n)
	}
	freq := make(FrequencyMap, n+1)
	for i := 0; i < n; i++ {
		c, e := r.ReadByte()
		if e != nil {
			return nil, headerError(e, "symbol")
		}
		s := Symbol(c)
		if _, dup := freq[s]; dup {
			return nil, errors.Wrapf(ErrMalformedHeader, "symbol %v repeated", s)
		}
		f, e := readNumber(r, "count of "+s.String())
		if e != nil {
			return nil, e
		}
		if f == 0 {
			return nil, errors.Wrapf(ErrMalformedHeader, "symbol %v has count 0", s)
		}
		freq[s] = f
	}
	freq[EndOfStream] = 1
	return freq, nil
}

// readNumber reads decimal digits and the single whitespace byte after them.
func readNumber(r io.ByteReader, what string) (int, error) {
	var digits []byte
	for {
		b, e := r.ReadByte()
		if e != nil {
			return 0, headerError(e, what)
		}
		if b >= '0' && b <= '9' {
			digits = append(digits, b)
			continue
		}
		if len(digits) == 0 {
			return 0, errors.Wrapf(ErrMalformedHeader, "%s: want digit, got %q", what, b)
		}
		if !isSpace(b) {
			return 0, errors.Wrapf(ErrMalformedHeader, "%s: want space, got %q", what, b)
		}
		break
	}
	v, e := strconv.Atoi(string(digits))
	if e != nil {
		return 0, errors.Wrapf(ErrMalformedHeader, "%s: %v", what, e)
	}
	return v, nil
}

func headerError(e error, what string) error {
	if isEOF(e) {
		return errors.Wrapf(ErrMalformedHeader, "%s: unexpected end of input", what)
	}
	return errors.WithStack(e)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
