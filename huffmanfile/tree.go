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

import "container/heap"
import "fmt"
import "io"
import "strings"
import "github.com/icza/huffman"
import "github.com/pkg/errors"

// internalValue marks nodes that carry no symbol.
const internalValue huffman.ValueType = -1

// Tree is a prefix-code tree. R is the root, T indexes the leaves by symbol
// (nil for symbols not in the tree). Left is the zero branch, Right the one branch.
type Tree struct {
	T [AlphabetSize]*huffman.Node
	R *huffman.Node
}

type queued struct {
	n   *huffman.Node
	seq int
}

// nodeQueue is a min-heap on Count. Equal counts leave in insertion order.
type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].n.Count != q[j].n.Count {
		return q[i].n.Count < q[j].n.Count
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(queued)) }
func (q *nodeQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

// BuildTree builds the tree by greedy merging of the two lightest items.
//
// Leaves are queued in ascending symbol order and merged nodes are queued
// after them, so ties always resolve the same way for the same map. Other
// tie policies give different trees of the same total code length.
//
// A map with a single entry gives a tree whose root is that leaf.
func BuildTree(freq FrequencyMap) (*Tree, error) {
	if len(freq) == 0 {
		return nil, errors.Wrap(ErrInvalidFrequencies, "no symbols")
	}
	t := new(Tree)
	q := make(nodeQueue, 0, len(freq))
	seq := 0
	for _, s := range freq.Symbols() {
		c := freq[s]
		if !s.valid() {
			return nil, errors.Wrapf(ErrInvalidFrequencies, "symbol %d outside alphabet", int(s))
		}
		if c <= 0 {
			return nil, errors.Wrapf(ErrInvalidFrequencies, "symbol %v has count %d", s, c)
		}
		n := &huffman.Node{Value: huffman.ValueType(s), Count: c}
		t.T[s] = n
		q = append(q, queued{n, seq})
		seq++
	}
	heap.Init(&q)
	for q.Len() > 1 {
		a := heap.Pop(&q).(queued).n
		b := heap.Pop(&q).(queued).n
		p := &huffman.Node{Left: a, Right: b, Count: a.Count + b.Count, Value: internalValue}
		a.Parent, b.Parent = p, p
		heap.Push(&q, queued{p, seq})
		seq++
	}
	t.R = q[0].n
	return t, nil
}

func isLeaf(n *huffman.Node) bool { return n.Left == nil }

// Leaves returns the number of symbols in the tree.
func (t *Tree) Leaves() (n int) {
	for _, l := range t.T {
		if l != nil {
			n++
		}
	}
	return
}

// Print writes the tree to w, one node per line, children indented under
// their parent with the zero branch first. Internal nodes show their weight,
// leaves their symbol and weight.
func (t *Tree) Print(w io.Writer) error {
	var sb strings.Builder
	var walk func(n *huffman.Node, depth int)
	walk = func(n *huffman.Node, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		if isLeaf(n) {
			fmt.Fprintf(&sb, "%v %d\n", Symbol(n.Value), n.Count)
			return
		}
		fmt.Fprintf(&sb, "%d\n", n.Count)
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	if t.R != nil {
		walk(t.R, 0)
	}
	_, e := io.WriteString(w, sb.String())
	return errors.WithStack(e)
}

// Release tears the tree down bottom-up. The tree is empty afterwards.
func (t *Tree) Release() {
	release(t.R)
	t.R = nil
	t.T = [AlphabetSize]*huffman.Node{}
}

func release(n *huffman.Node) {
	if n == nil {
		return
	}
	release(n.Left)
	release(n.Right)
	n.Left, n.Right, n.Parent = nil, nil, nil
}
