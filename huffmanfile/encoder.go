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

// BitWriter is the sink of the encoder. *bitio.Writer implements it.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
}

// Encode writes the code of every byte of r, then the code of EndOfStream.
func Encode(r io.ByteReader, codes *CodeTable, w BitWriter) error {
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			break
		}
		if e != nil {
			return errors.WithStack(e)
		}
		c := codes[b]
		if c.Len == 0 {
			return errors.Wrapf(ErrUnknownSymbol, "%v", Symbol(b))
		}
		if e = w.WriteBits(c.Bits, c.Len); e != nil {
			return errors.WithStack(e)
		}
	}
	c, ok := codes.Lookup(EndOfStream)
	if !ok {
		return errors.Wrapf(ErrUnknownSymbol, "%v", EndOfStream)
	}
	return errors.WithStack(w.WriteBits(c.Bits, c.Len))
}
