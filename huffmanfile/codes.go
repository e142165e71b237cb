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

import "strings"
import "github.com/icza/huffman"
import "github.com/pkg/errors"

const maxCodeLen = 64

// Code is a root-to-leaf path. The first step is the most significant of the
// Len low bits of Bits; a 0 takes the zero branch.
type Code struct {
	Bits uint64
	Len  uint8
}

func (c Code) String() string {
	var sb strings.Builder
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps symbols to codes. Absent symbols have Len 0.
type CodeTable [AlphabetSize]Code

// Lookup returns the code of s.
func (ct *CodeTable) Lookup(s Symbol) (Code, bool) {
	if !s.valid() || ct[s].Len == 0 {
		return Code{}, false
	}
	return ct[s], true
}

// EncodedBits is the body length in bits for input with counts freq.
func (ct *CodeTable) EncodedBits(freq FrequencyMap) (n int64) {
	for s, c := range freq {
		if s.valid() {
			n += int64(c) * int64(ct[s].Len)
		}
	}
	return
}

// DeriveCodes walks the tree once and records the path to every leaf.
// A tree made of a single leaf gives that leaf the one bit code 0.
func DeriveCodes(t *Tree) (*CodeTable, error) {
	if t == nil || t.R == nil {
		return nil, errors.Wrap(ErrInvalidFrequencies, "empty tree")
	}
	ct := new(CodeTable)
	if isLeaf(t.R) {
		ct[t.R.Value] = Code{Bits: 0, Len: 1}
		return ct, nil
	}
	var walk func(n *huffman.Node, c Code) error
	walk = func(n *huffman.Node, c Code) error {
		if isLeaf(n) {
			ct[n.Value] = c
			return nil
		}
		if c.Len == maxCodeLen {
			return errors.WithStack(ErrCodeTooLong)
		}
		if e := walk(n.Left, Code{c.Bits << 1, c.Len + 1}); e != nil {
			return e
		}
		return walk(n.Right, Code{c.Bits<<1 | 1, c.Len + 1})
	}
	if e := walk(t.R, Code{}); e != nil {
		return nil, e
	}
	return ct, nil
}
