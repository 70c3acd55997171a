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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutations(t *testing.T) {
	type testcase struct {
		n     int
		perms []string
	}
	testcases := []testcase{
		{
			n:     0,
			perms: []string{""},
		},
		{
			n:     1,
			perms: []string{"0"},
		},
		{
			n:     2,
			perms: []string{"01", "10"},
		},
		{
			n:     3,
			perms: []string{"012", "021", "201", "210", "120", "102"},
		},
		{
			n: 4,
			perms: []string{
				"0123", "0132", "0312", "3012", "3021", "0321", "0231", "0213",
				"2013", "2031", "2301", "3201", "3210", "2310", "2130", "2103",
				"1203", "1230", "1320", "3120", "3102", "1302", "1032", "1023",
			},
		},
	}
	for _, tc := range testcases {
		p := NewPermutations(seq(tc.n))
		strs := drain(p)
		requireSameSequence(t, tc.perms, strs)
	}
}

func TestPermutationsAdjacentChanges(t *testing.T) {
	p := NewPermutations(seq(6))
	var prev []int
	count := 0
	for v := range p.All() {
		if prev != nil {
			var diff []int
			for i := range v {
				if v[i] != prev[i] {
					diff = append(diff, i)
				}
			}
			require.Len(t, diff, 2, "%v -> %v", prev, v)
			assert.Equal(t, diff[0]+1, diff[1], "%v -> %v", prev, v)
		}
		prev = append(prev[:0], v...)
		count++
	}
	assert.Equal(t, 720, count)
	assert.Equal(t, Exhausted, p.Phase())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestAdjacentSwaps(t *testing.T) {
	g := NewAdjacentSwaps(3)
	expected := []Swap{{0, 0}, {1, 2}, {0, 1}, {1, 2}, {0, 1}, {1, 2}}
	for i, e := range expected {
		s, ok := g.Next()
		require.True(t, ok, "swap %d", i)
		assert.Equal(t, e, s, "swap %d", i)
	}
	assert.True(t, expected[0].Identity())
	_, ok := g.Next()
	assert.False(t, ok)
	_, ok = g.Next()
	assert.False(t, ok)

	g.Reset()
	s, ok := g.Next()
	require.True(t, ok)
	assert.True(t, s.Identity())
}

func TestPermutationsReset(t *testing.T) {
	p := NewPermutations([]string{"x", "y", "z"})
	drain2 := func() [][]string {
		var all [][]string
		for v := range p.All() {
			all = append(all, append([]string(nil), v...))
		}
		return all
	}
	first := drain2()
	require.Len(t, first, 6)
	assert.Equal(t, []string{"x", "y", "z"}, first[0])
	p.Reset()
	assert.Equal(t, first, drain2())
}

// fixedSwaps replays a list of swaps and cannot be rewound.
type fixedSwaps struct {
	swaps []Swap
}

func (f *fixedSwaps) Next() (Swap, bool) {
	if len(f.swaps) == 0 {
		return Swap{}, false
	}
	s := f.swaps[0]
	f.swaps = f.swaps[1:]
	return s, true
}

func TestPermutationsWithInjectedSwaps(t *testing.T) {
	g := &fixedSwaps{
		swaps: []Swap{{0, 0}, {0, 2}, {1, 1}, {0, 1}},
	}
	p := NewPermutationsWith([]int{1, 2, 3}, g)
	strs := drain(p)
	assert.Equal(t, []string{"123", "321", "321", "231"}, strs)

	// not resettable, so stays exhausted
	p.Reset()
	assert.Equal(t, Exhausted, p.Phase())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestPermutationsBadSwapPanics(t *testing.T) {
	g := &fixedSwaps{
		swaps: []Swap{{0, 3}},
	}
	p := NewPermutationsWith([]int{1, 2, 3}, g)
	assert.Panics(t, func() {
		p.Next()
	})
}
