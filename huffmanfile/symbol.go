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

import "fmt"
import "sort"

// Symbol is one element of the alphabet: a byte value or EndOfStream.
type Symbol int

const (
	// EndOfStream terminates every encoded body. It sits just past the byte range.
	EndOfStream Symbol = 256

	AlphabetSize = 257
)

// IsByte reports whether s stands for a plain byte value.
func (s Symbol) IsByte() bool { return s >= 0 && s < EndOfStream }

func (s Symbol) valid() bool { return s >= 0 && s <= EndOfStream }

func (s Symbol) String() string {
	switch {
	case s == EndOfStream:
		return "EOS"
	case s.IsByte():
		return fmt.Sprintf("%q", byte(s))
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// FrequencyMap maps each symbol seen to its positive count.
type FrequencyMap map[Symbol]int

// Symbols returns the keys of f in ascending order.
func (f FrequencyMap) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(f))
	for s := range f {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Total is the sum of all counts, EndOfStream included.
func (f FrequencyMap) Total() (n int64) {
	for _, c := range f {
		n += int64(c)
	}
	return
}
