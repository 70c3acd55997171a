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

// Command combiter prints the combinations, subsequences, permutations,
// products or binary tree shapes of its arguments.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/krnowak/combiter/internal/emit"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var isDbg = os.Getenv("DBG") == "1"

type globalFlags struct {
	format  string
	out     string
	limit   int
	count   bool
	pkg     string
	varName string
	debug   bool
}

var gf globalFlags

func (f globalFlags) options() (emit.Options, error) {
	var err error
	format, ferr := emit.ParseFormat(f.format)
	err = multierr.Append(err, ferr)
	if f.limit < 0 {
		err = multierr.Append(err, errors.Errorf("limit must not be negative, got %d", f.limit))
	}
	opts := emit.Options{
		Format:  format,
		Package: f.pkg,
		Var:     f.varName,
		Command: strings.Join(append([]string{"combiter"}, os.Args[1:]...), " "),
		Log:     log.StandardLogger(),
	}
	err = multierr.Append(err, opts.Validate())
	return opts, err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "combiter",
		Short:         "Enumerate combinatorial derivatives of the arguments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if gf.debug || isDbg {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			_, err := gf.options()
			return err
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gf.format, "format", string(emit.Text), "output format, one of text, json or go")
	pf.StringVar(&gf.out, "out", "", "output file, if empty, stdout is used (or, for the go format, a file named after -var)")
	pf.IntVar(&gf.limit, "limit", 0, "stop after that many items, 0 means no limit")
	pf.BoolVar(&gf.count, "count", false, "only print the number of items and check it against the closed formula")
	pf.StringVar(&gf.pkg, "package", "main", "package name of the generated go file")
	pf.StringVar(&gf.varName, "var", "items", "variable name in the generated go file")
	pf.BoolVar(&gf.debug, "debug", false, "enable debug log, same as DBG=1")

	rootCmd.AddCommand(
		newCombinationsCmd(),
		newSubsequencesCmd(),
		newPermutationsCmd(),
		newProductCmd(),
		newTreesCmd(),
	)
	return rootCmd
}

// run drains next, honouring -limit, and prints the result. Views are
// cloned since next reuses its buffer.
func run[T any](cmd *cobra.Command, family string, next func() ([]T, bool), expected uint64) error {
	opts, err := gf.options()
	if err != nil {
		return err
	}
	var rows [][]T
	n := 0
	for gf.limit == 0 || n < gf.limit {
		v, ok := next()
		if !ok {
			break
		}
		if !gf.count {
			rows = append(rows, slices.Clone(v))
		}
		n++
	}
	log.WithFields(log.Fields{
		"family":   family,
		"items":    n,
		"expected": expected,
	}).Debug("enumeration done")
	if gf.count {
		if gf.limit == 0 && (uint64)(n) != expected {
			log.Warnf("%s: got %d items, the closed formula says %d", family, n, expected)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	}
	w, closeFn, err := openOut(cmd, opts)
	if err != nil {
		return err
	}
	err = emit.Write(w, opts, rows)
	return multierr.Append(err, closeFn())
}

func openOut(cmd *cobra.Command, opts emit.Options) (io.Writer, func() error, error) {
	outFile := gf.out
	if outFile == "" && opts.Format == emit.Go {
		outFile = strings.ToLower(fmt.Sprintf("%s_combiter.go", opts.Var))
	}
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if abs, err := filepath.Abs(outFile); err == nil {
		outFile = abs
	}
	log.Debugf("writing to %s", outFile)
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create outfile %s", outFile)
	}
	return f, f.Close, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error(e)
		}
		os.Exit(1)
	}
}
