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

// BitReader is the source of the decoder. *bitio.Reader implements it.
type BitReader interface {
	ReadBool() (bool, error)
}

// Decode walks t from the root, one bit per step, and writes the symbol of
// every leaf it lands on to w. It stops at the EndOfStream leaf; the bits
// after it are never read.
//
// A tree that is one leaf consumes one bit per symbol, matching the code
// DeriveCodes gives it.
func Decode(r BitReader, t *Tree, w io.ByteWriter) error {
	if t == nil || t.R == nil {
		return errors.Wrap(ErrInvalidFrequencies, "empty tree")
	}
	root := t.R
	n := root
	for {
		b, e := r.ReadBool()
		if e != nil {
			if isEOF(e) {
				return errors.WithStack(ErrTruncatedStream)
			}
			return errors.WithStack(e)
		}
		if !isLeaf(n) {
			if b {
				n = n.Right
			} else {
				n = n.Left
			}
		}
		if !isLeaf(n) {
			continue
		}
		s := Symbol(n.Value)
		if s == EndOfStream {
			return nil
		}
		if e = w.WriteByte(byte(s)); e != nil {
			return errors.WithStack(e)
		}
		n = root
	}
}
