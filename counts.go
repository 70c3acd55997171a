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

// The counts below overflow silently for large inputs, the same way the
// enumerators would take forever to produce that many objects.

// Binomial returns n choose k, or 0 when k is out of range.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := (uint64)(1)
	for i := 0; i < k; i++ {
		// exact: r is C(n, i) here, C(n, i) * (n-i) is divisible by i+1
		r = r * (uint64)(n-i) / (uint64)(i+1)
	}
	return r
}

// Subsets returns the number of subsequences of an n-element sequence.
func Subsets(n int) uint64 {
	return (uint64)(1) << n
}

// Factorial returns n!, with 0! = 1.
func Factorial(n int) uint64 {
	r := (uint64)(1)
	for i := 2; i <= n; i++ {
		r *= (uint64)(i)
	}
	return r
}

// Catalan returns the number of binary tree shapes with n+1 leaves.
func Catalan(n int) uint64 {
	if n < 0 {
		return 0
	}
	return Binomial(2*n, n) / (uint64)(n+1)
}
