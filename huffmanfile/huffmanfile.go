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


/*
Package huffmanfile implements a self-describing Huffman file format.

A compressed file is a text header holding the byte frequencies of the
input, followed by the bit-packed codes of the input bytes and of a final
EndOfStream symbol. The decoder rebuilds the same tree from the header, so the
tree itself is never stored, and it knows where the body ends without a
length field. Padding bits in the last byte are never read.
*/
package huffmanfile

import "bufio"
import "io"
import "github.com/icza/bitio"
import "github.com/pkg/errors"

// Compress reads src twice, once to count and once to encode, and writes the
// compressed file to dst.
func Compress(src io.ReadSeeker, dst io.Writer) error {
	br := bufio.NewReader(src)
	freq, e := CountFrequencies(br)
	if e != nil {
		return e
	}
	if e = WriteHeader(dst, freq); e != nil {
		return e
	}
	t, e := BuildTree(freq)
	if e != nil {
		return e
	}
	defer t.Release()
	codes, e := DeriveCodes(t)
	if e != nil {
		return e
	}
	if _, e = src.Seek(0, io.SeekStart); e != nil {
		return errors.Wrap(e, "rewind source")
	}
	br.Reset(src)
	bw := bitio.NewWriter(dst)
	if e = Encode(br, codes, bw); e != nil {
		return e
	}
	return errors.WithStack(bw.Close())
}

// Decompress reads a file written by Compress from src and writes the
// original bytes to dst.
func Decompress(src io.Reader, dst io.Writer) error {
	br := bufio.NewReader(src)
	freq, e := ReadHeader(br)
	if e != nil {
		return e
	}
	t, e := BuildTree(freq)
	if e != nil {
		return e
	}
	defer t.Release()
	out := bufio.NewWriter(dst)
	if e = Decode(bitio.NewReader(br), t, out); e != nil {
		return e
	}
	return errors.WithStack(out.Flush())
}
