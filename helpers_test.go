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
	"strconv"
	"strings"
	"testing"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func joinInts(idxs []int) string {
	sb := strings.Builder{}
	for _, idx := range idxs {
		sb.WriteString(strconv.FormatInt((int64)(idx), 10))
	}
	return sb.String()
}

type intLender interface {
	Next() ([]int, bool)
}

// drain copies every view out of l into a string.
func drain(l intLender) []string {
	var strs []string
	for {
		v, ok := l.Next()
		if !ok {
			return strs
		}
		strs = append(strs, joinInts(v))
	}
}

func toSet(strs []string) *hashset.Set {
	set := hashset.New()
	for _, str := range strs {
		set.Add(str)
	}
	return set
}

// requireSameSequence checks got against expected, first as sets, then
// element by element.
func requireSameSequence(t *testing.T, expected, got []string) {
	t.Helper()
	expectedSet := toSet(expected)
	require.Equal(t, len(expected), expectedSet.Size(), "bug in testcase")
	failed := !assert.Len(t, got, len(expected))
	gotSet := toSet(got)
	missing := expectedSet.Difference(gotSet)
	extra := gotSet.Difference(expectedSet)
	if !assert.True(t, missing.Empty(), "missing elements: %v", missing.Values()) {
		failed = true
	}
	if !assert.True(t, extra.Empty(), "extra elements: %v", extra.Values()) {
		failed = true
	}
	if failed {
		// ordering is meaningless now
		return
	}
	for idx := range got {
		assert.Equal(t, expected[idx], got[idx], "bad value at index %d", idx)
	}
}
