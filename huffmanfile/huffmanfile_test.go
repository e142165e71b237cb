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
import "math/rand"
import "testing"
import "github.com/icza/bitio"
import "github.com/stretchr/testify/require"

func compress(t testing.TB, src []byte) []byte {
	buf := new(bytes.Buffer)
	require.NoError(t, Compress(bytes.NewReader(src), buf))
	return buf.Bytes()
}

func decompress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := Decompress(bytes.NewReader(src), buf)
	return buf.Bytes(), err
}

func TestCompressLayout(t *testing.T) {
	// a=10 b=11 EOS=0, padded with zeros
	require.Equal(t, []byte("2 a1 b1 \xb0"), compress(t, []byte("ab")))
}

func TestEmptyInput(t *testing.T) {
	out := compress(t, nil)
	require.Equal(t, []byte("0 \x00"), out)

	got, err := decompress(out)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSingleSymbol(t *testing.T) {
	src := bytes.Repeat([]byte{0x41}, 1000)
	out := compress(t, src)

	// EOS=0 A=1: 1000 ones and a zero
	require.Equal(t, "1 A1000 ", string(out[:8]))
	require.Len(t, out, 8+126)
	require.Equal(t, bytes.Repeat([]byte{0xff}, 125), out[8:133])
	require.Equal(t, byte(0), out[133])

	got, err := decompress(out)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	inputs := [][]byte{
		[]byte("a"),
		[]byte("abracadabra"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		{0, 0, 0, 255, 255, 1},
		bytes.Repeat([]byte("0123456789 "), 300),
	}
	all := make([]byte, 256*3)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all)
	for i := 0; i < 20; i++ {
		inputs = append(inputs, randomInput(rnd, rnd.Intn(20000), 1+rnd.Intn(256)))
	}
	for _, src := range inputs {
		got, err := decompress(compress(t, src))
		require.NoError(t, err)
		require.Equal(t, len(src), len(got))
		require.True(t, bytes.Equal(src, got))
	}
}

func TestDecompressSentinel(t *testing.T) {
	out := compress(t, []byte("mississippi"))
	freq, err := ReadHeader(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 1, freq[EndOfStream])
	require.Equal(t, FrequencyMap{'m': 1, 'i': 4, 's': 4, 'p': 2, EndOfStream: 1}, freq)
}

func TestTruncatedBody(t *testing.T) {
	src := []byte("hello world, hello huffman")
	out := compress(t, src)

	hdr := new(bytes.Buffer)
	require.NoError(t, WriteHeader(hdr, countBytes(t, src)))

	_, err := decompress(out[:hdr.Len()])
	require.ErrorIs(t, err, ErrTruncatedStream)

	_, err = decompress(out[:len(out)-2])
	require.ErrorIs(t, err, ErrTruncatedStream)
}

func TestDecompressMalformedHeader(t *testing.T) {
	_, err := decompress([]byte("2 a1"))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

type bitSeq []bool

func (b *bitSeq) ReadBool() (bool, error) {
	if len(*b) == 0 {
		return false, io.EOF
	}
	v := (*b)[0]
	*b = (*b)[1:]
	return v, nil
}

func TestDecodeStopsAtSentinel(t *testing.T) {
	tree, err := BuildTree(FrequencyMap{'a': 1, 'b': 1, EndOfStream: 1})
	require.NoError(t, err)
	// b, a, EOS, then bits that must stay unread
	in := bitSeq{true, true, true, false, false, true, true}
	out := new(bytes.Buffer)
	require.NoError(t, Decode(&in, tree, out))
	require.Equal(t, "ba", out.String())
	require.Len(t, in, 2)
}

func TestDecodeTruncatedBeforeLeaf(t *testing.T) {
	// four leaves of equal weight, every code is two bits long
	tree, err := BuildTree(FrequencyMap{'a': 1, 'b': 1, 'c': 1, EndOfStream: 1})
	require.NoError(t, err)

	for _, in := range []bitSeq{{}, {true}, {false, false, true}} {
		out := new(bytes.Buffer)
		err := Decode(&in, tree, out)
		require.ErrorIs(t, err, ErrTruncatedStream)
	}
}

func TestDecodeSingleLeaf(t *testing.T) {
	tree, err := BuildTree(FrequencyMap{EndOfStream: 1})
	require.NoError(t, err)

	in := bitSeq{false, true}
	out := new(bytes.Buffer)
	require.NoError(t, Decode(&in, tree, out))
	require.Zero(t, out.Len())
	require.Len(t, in, 1)

	in = bitSeq{}
	require.ErrorIs(t, Decode(&in, tree, out), ErrTruncatedStream)
}

func TestEncodeUnknownSymbol(t *testing.T) {
	tree, err := BuildTree(countBytes(t, []byte("ab")))
	require.NoError(t, err)
	codes, err := DeriveCodes(tree)
	require.NoError(t, err)

	w := bitio.NewWriter(io.Discard)
	err = Encode(bytes.NewReader([]byte("abc")), codes, w)
	require.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestEncodeDecode(t *testing.T) {
	src := []byte("she sells sea shells by the sea shore")
	tree, err := BuildTree(countBytes(t, src))
	require.NoError(t, err)
	codes, err := DeriveCodes(tree)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	require.NoError(t, Encode(bytes.NewReader(src), codes, w))
	require.NoError(t, w.Close())

	want := codes.EncodedBits(countBytes(t, src))
	require.Equal(t, int((want+7)/8), buf.Len())

	out := new(bytes.Buffer)
	require.NoError(t, Decode(bitio.NewReader(buf), tree, out))
	require.Equal(t, src, out.Bytes())
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("abracadabra"))
	f.Add(bytes.Repeat([]byte{0}, 100))
	f.Fuzz(func(t *testing.T, src []byte) {
		got, err := decompress(compress(t, src))
		require.NoError(t, err)
		require.True(t, bytes.Equal(src, got))
	})
}
