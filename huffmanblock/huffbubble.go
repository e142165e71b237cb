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


// Block based huffman coding.
//
// The blocks are complete huffmanfile streams: a frequency header, then the
// codes terminated by the EndOfStream symbol.
package huffmanblock

import "bytes"
import "github.com/maxymania/huffpack/huffmanfile"

// Encode compresses src into a new buffer.
func Encode(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	if e := huffmanfile.Compress(bytes.NewReader(src), buf); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

// Decode restores a block made by Encode.
func Decode(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	if e := huffmanfile.Decompress(bytes.NewReader(src), buf); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

type Stats struct {
	Plain    int   // input length
	Symbols  int   // distinct symbols, EndOfStream included
	Header   int   // header length
	BodyBits int64 // body length in bits, before padding
}

// Packed is the length Encode produces for the same input.
func (s Stats) Packed() int { return s.Header + int((s.BodyBits+7)/8) }

// Analysis is the state Encode would compress src with. Release frees Tree.
type Analysis struct {
	Freq  huffmanfile.FrequencyMap
	Tree  *huffmanfile.Tree
	Codes *huffmanfile.CodeTable
	Stats Stats
}

func (a *Analysis) Release() { a.Tree.Release() }

// Analyze counts src, builds its tree and codes and sizes the output.
func Analyze(src []byte) (*Analysis, error) {
	freq, e := huffmanfile.CountFrequencies(bytes.NewReader(src))
	if e != nil {
		return nil, e
	}
	t, e := huffmanfile.BuildTree(freq)
	if e != nil {
		return nil, e
	}
	codes, e := huffmanfile.DeriveCodes(t)
	if e != nil {
		t.Release()
		return nil, e
	}
	hdr := new(bytes.Buffer)
	if e = huffmanfile.WriteHeader(hdr, freq); e != nil {
		t.Release()
		return nil, e
	}
	return &Analysis{
		Freq:  freq,
		Tree:  t,
		Codes: codes,
		Stats: Stats{
			Plain:    len(src),
			Symbols:  len(freq),
			Header:   hdr.Len(),
			BodyBits: codes.EncodedBits(freq),
		},
	}, nil
}

// Inspect computes the Stats of src without encoding it.
func Inspect(src []byte) (Stats, error) {
	a, e := Analyze(src)
	if e != nil {
		return Stats{}, e
	}
	defer a.Release()
	return a.Stats, nil
}
