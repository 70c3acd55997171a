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

// Package emit writes enumerated rows as text, JSON or generated Go source.
package emit

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	Go   Format = "go"
)

var Formats = []Format{Text, JSON, Go}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q, expected one of %v", s, Formats)
}

type Options struct {
	Format Format
	// Go only: package clause, variable name and the command line recorded
	// in the generated header.
	Package string
	Var     string
	Command string
	Log     logrus.FieldLogger
}

// Validate reports problems with the Go-specific options.
func (o Options) Validate() error {
	if o.Format != Go {
		return nil
	}
	if !token.IsIdentifier(o.Package) {
		return errors.Errorf("package name %q is not an identifier", o.Package)
	}
	if !token.IsIdentifier(o.Var) {
		return errors.Errorf("variable name %q is not an identifier", o.Var)
	}
	return nil
}

// Write writes rows to w in the format from opts.
func Write[T any](w io.Writer, opts Options, rows [][]T) error {
	switch opts.Format {
	case Text:
		return writeText(w, rows)
	case JSON:
		return writeJSON(w, rows)
	case Go:
		return writeGo(w, opts, rows)
	}
	return errors.Errorf("unknown format %q", opts.Format)
}

func writeText[T any](w io.Writer, rows [][]T) error {
	for _, row := range rows {
		strs := make([]string, 0, len(row))
		for _, e := range row {
			strs = append(strs, fmt.Sprint(e))
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON[T any](w io.Writer, rows [][]T) error {
	if rows == nil {
		rows = [][]T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeGo[T any](w io.Writer, opts Options, rows [][]T) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by \"%s\"; DO NOT EDIT.\n", opts.Command)
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "package %s\n", opts.Package)
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "var %s = %T{\n", opts.Var, rows)
	for _, row := range rows {
		if row == nil {
			row = []T{}
		}
		fmt.Fprintf(buf, "\t%#v,\n", row)
	}
	fmt.Fprintf(buf, "}\n")
	src, err := imports.Process("", buf.Bytes(), nil)
	if err != nil {
		log := opts.Log
		if log == nil {
			log = logrus.StandardLogger()
		}
		log.Warnf("failed to format the code, compile to see what's wrong: %v", err)
		src = buf.Bytes()
	}
	_, err = w.Write(src)
	return err
}
