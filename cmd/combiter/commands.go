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

package main

import (
	"github.com/krnowak/combiter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCombinationsCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "combinations -k K ITEM...",
		Short: "Print the K-element subsets of the items in lexicographic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := combiter.NewCombinations(args, k)
			if err != nil {
				return err
			}
			return run(cmd, "combinations", c.Next, combiter.Binomial(len(args), k))
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of items in each combination")
	return cmd
}

func newSubsequencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subsequences ITEM...",
		Short: "Print all the subsequences of the items, starting with the empty one",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := combiter.NewSubsequences(args)
			return run(cmd, "subsequences", s.Next, combiter.Subsets(len(args)))
		},
	}
}

func newPermutationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "permutations ITEM...",
		Short: "Print all the orderings of the items, each one a swap of neighbours away from the previous",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := combiter.NewPermutations(args)
			return run(cmd, "permutations", p.Next, combiter.Factorial(len(args)))
		},
	}
}

func newProductCmd() *cobra.Command {
	var outer, inner []string
	cmd := &cobra.Command{
		Use:   "product --outer A,B --inner X,Y",
		Short: "Print the pairs of the Cartesian product, outer items changing slowest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := combiter.ProductOf(outer, inner)
			pair := make([]string, 2)
			next := func() ([]string, bool) {
				pr, ok := p.Next()
				if !ok {
					return nil, false
				}
				pair[0], pair[1] = pr.Outer, pr.Inner
				return pair, true
			}
			return run(cmd, "product", next, (uint64)(len(outer))*(uint64)(len(inner)))
		},
	}
	cmd.Flags().StringSliceVar(&outer, "outer", nil, "comma-separated outer items")
	cmd.Flags().StringSliceVar(&inner, "inner", nil, "comma-separated inner items")
	return cmd
}

func newTreesCmd() *cobra.Command {
	var leaves int
	var expr string
	cmd := &cobra.Command{
		Use:   "trees --leaves N",
		Short: "Print the binary trees with N leaves as labels of their internal nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := combiter.NewTreeShapes(leaves)
			if err != nil {
				return err
			}
			expected := combiter.Catalan(leaves - 1)
			var render func([]int) (string, error)
			switch expr {
			case "":
				return run(cmd, "trees", ts.Next, expected)
			case "prefix":
				render = combiter.Prefix
			case "infix":
				render = combiter.Infix
			default:
				return errors.Errorf("unknown expression kind %q, expected prefix or infix", expr)
			}
			row := make([]string, 1)
			var renderErr error
			next := func() ([]string, bool) {
				labels, ok := ts.Next()
				if !ok {
					return nil, false
				}
				row[0], renderErr = render(labels)
				return row, renderErr == nil
			}
			if err := run(cmd, "trees", next, expected); err != nil {
				return err
			}
			return renderErr
		},
	}
	cmd.Flags().IntVar(&leaves, "leaves", 1, "number of leaves")
	cmd.Flags().StringVar(&expr, "expr", "", "print trees as prefix or infix expressions instead of labels")
	return cmd
}
