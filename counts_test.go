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
)

func TestSubsets(t *testing.T) {
	for n := 0; n <= 10; n++ {
		assert.Equal(t, (uint64)(1)<<n, Subsets(n), "Subsets(%d)", n)
	}
}

func TestBinomial(t *testing.T) {
	type testcase struct {
		n, k int
		c    uint64
	}
	tcs := []testcase{
		{n: 0, k: 0, c: 1},
		{n: 5, k: 0, c: 1},
		{n: 5, k: 5, c: 1},
		{n: 6, k: 3, c: 20},
		{n: 10, k: 3, c: 120},
		{n: 10, k: 7, c: 120},
		{n: 52, k: 5, c: 2598960},
		{n: 3, k: 4, c: 0},
		{n: 3, k: -1, c: 0},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.c, Binomial(tc.n, tc.k), "Binomial(%d, %d)", tc.n, tc.k)
	}
}

func TestFactorial(t *testing.T) {
	expected := []uint64{1, 1, 2, 6, 24, 120, 720, 5040}
	for n, f := range expected {
		assert.Equal(t, f, Factorial(n), "Factorial(%d)", n)
	}
}

func TestCatalan(t *testing.T) {
	expected := []uint64{1, 1, 2, 5, 14, 42, 132, 429, 1430}
	for n, c := range expected {
		assert.Equal(t, c, Catalan(n), "Catalan(%d)", n)
	}
	assert.Equal(t, (uint64)(0), Catalan(-1))
}
