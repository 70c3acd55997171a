// Copyright Krzesimir Nowak
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package combiter

import (
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TreeShapes enumerates the binary trees with a given number of leaves.
// There are Catalan(leaves-1) of them.
//
// A tree is yielded as the labels of its internal nodes in pre-order,
// where a label is the index of the leftmost leaf below the node. Starting
// with the leaves
//
//	0 1 2 3 4 5 6
//
// the labels
//
//	0 1 2 3 3 4
//
// say where to insert the operators of a prefix expression: label l puts
// an operator right before leaf l.
//
//	+ 0 + 1 + 2 + + 3 + 4 5 6
//
// Bracketing reveals the tree, here 0 + (1 + (2 + ((3 + (4 + 5)) + 6))).
//
// The first tree is the right comb 0 1 2 ... and the last one is the left
// comb 0 0 0 .... From a state where j != 0 is the leftmost nonzero label
// (*: cells left intact)
//
//	0 0 0 ... 0 0 0 ... 0 j * ...
//
// the next one is
//
//	0 1 2 ... j-2 j-1 j-1 ... j-1 j-1 * ...
type TreeShapes struct {
	labels []int
	phase  Phase
}

// NewTreeShapes returns an enumerator over binary trees with the given
// number of leaves. The yielded label views have leaves-1 elements.
func NewTreeShapes(leaves int) (*TreeShapes, error) {
	if leaves < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "a tree needs at least one leaf, got %d", leaves)
	}
	t := &TreeShapes{
		labels: make([]int, leaves-1),
	}
	t.Reset()
	return t, nil
}

// Reset rewinds the enumerator to the right comb.
func (t *TreeShapes) Reset() {
	for i := range t.labels {
		t.labels[i] = i
	}
	t.phase = NotStarted
}

func (t *TreeShapes) Phase() Phase {
	return t.phase
}

// Next advances to the next tree. Once it returns false it keeps doing so
// until Reset.
func (t *TreeShapes) Next() ([]int, bool) {
	switch t.phase {
	case NotStarted:
		t.phase = InProgress
		return view(t.labels), true
	case Exhausted:
		return nil, false
	}
	i := 0
	for i < len(t.labels) && t.labels[i] == 0 {
		i++
	}
	if i == len(t.labels) {
		t.phase = Exhausted
		return nil, false
	}
	j := t.labels[i]
	for k := 1; k < j; k++ {
		t.labels[k] = k
	}
	for k := j; k <= i; k++ {
		t.labels[k] = j - 1
	}
	return view(t.labels), true
}

// All returns an iterator over the remaining trees.
func (t *TreeShapes) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for {
			v, ok := t.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ValidLabels tells whether labels encode a binary tree: they start at
// zero, never decrease and labels[p] <= p.
func ValidLabels(labels []int) bool {
	for p, l := range labels {
		if l < 0 || l > p {
			return false
		}
		if p > 0 && l < labels[p-1] {
			return false
		}
	}
	return true
}

const opToken = -1

// tokens turns labels into a prefix expression, with opToken standing for
// an operator and other values for leaves.
func tokens(labels []int) ([]int, error) {
	if !ValidLabels(labels) {
		return nil, errors.Wrapf(ErrInvalidParameter, "labels %v do not describe a binary tree", labels)
	}
	toks := make([]int, 0, 2*len(labels)+1)
	p := 0
	for leaf := 0; leaf <= len(labels); leaf++ {
		for p < len(labels) && labels[p] == leaf {
			toks = append(toks, opToken)
			p++
		}
		toks = append(toks, leaf)
	}
	return toks, nil
}

// Prefix renders labels as a prefix expression like "+ 0 + 1 2".
func Prefix(labels []int) (string, error) {
	toks, err := tokens(labels)
	if err != nil {
		return "", err
	}
	strs := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok == opToken {
			strs = append(strs, "+")
		} else {
			strs = append(strs, strconv.Itoa(tok))
		}
	}
	return strings.Join(strs, " "), nil
}

// Infix renders labels as a bracketed infix expression like
// "0 + (1 + 2)".
func Infix(labels []int) (string, error) {
	toks, err := tokens(labels)
	if err != nil {
		return "", err
	}
	sb := strings.Builder{}
	rest := writeInfix(&sb, toks, true)
	invariant(len(rest) == 0, "%d prefix tokens left unparsed", len(rest))
	return sb.String(), nil
}

func writeInfix(sb *strings.Builder, toks []int, top bool) []int {
	tok := toks[0]
	toks = toks[1:]
	if tok != opToken {
		sb.WriteString(strconv.Itoa(tok))
		return toks
	}
	if !top {
		sb.WriteByte('(')
	}
	toks = writeInfix(sb, toks, false)
	sb.WriteString(" + ")
	toks = writeInfix(sb, toks, false)
	if !top {
		sb.WriteByte(')')
	}
	return toks
}
