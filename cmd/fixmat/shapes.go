// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fixmat/dim"
	"github.com/katalvlaran/fixmat/matrix"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// ErrUnsupportedShape is returned for shapes outside the registry.
var ErrUnsupportedShape = errors.New("unsupported shape")

// shapeOps holds the commands instantiated for one compile-time shape.
type shapeOps struct {
	rows, cols int
	show       func(doc []byte, output string) (string, error)
	transpose  func(doc []byte, output string) (string, error)
}

func (s shapeOps) key() string { return fmt.Sprintf("%dx%d", s.rows, s.cols) }

// instantiate binds the commands to Mat[float64, R, C].
func instantiate[R, C dim.Unsigned]() shapeOps {
	return shapeOps{
		rows: dim.Of[R](),
		cols: dim.Of[C](),
		show: func(doc []byte, output string) (string, error) {
			m, err := decode[R, C](doc)
			if err != nil {
				return "", err
			}
			return render(m, output)
		},
		transpose: func(doc []byte, output string) (string, error) {
			m, err := decode[R, C](doc)
			if err != nil {
				return "", err
			}
			return render(m.T().Collect(), output)
		},
	}
}

// registry maps "RxC" to its instantiation; shapes 1..4 × 1..4.
var registry = index(
	instantiate[dim.U1, dim.U1](), instantiate[dim.U1, dim.U2](), instantiate[dim.U1, dim.U3](), instantiate[dim.U1, dim.U4](),
	instantiate[dim.U2, dim.U1](), instantiate[dim.U2, dim.U2](), instantiate[dim.U2, dim.U3](), instantiate[dim.U2, dim.U4](),
	instantiate[dim.U3, dim.U1](), instantiate[dim.U3, dim.U2](), instantiate[dim.U3, dim.U3](), instantiate[dim.U3, dim.U4](),
	instantiate[dim.U4, dim.U1](), instantiate[dim.U4, dim.U2](), instantiate[dim.U4, dim.U3](), instantiate[dim.U4, dim.U4](),
)

func index(all ...shapeOps) map[string]shapeOps {
	out := make(map[string]shapeOps, len(all))
	for _, s := range all {
		out[s.key()] = s
	}

	return out
}

// lookupShape parses "RxC" (case-insensitive x) and returns its instantiation.
func lookupShape(shape string) (shapeOps, error) {
	rs, cs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(shape)), "x")
	if !ok {
		return shapeOps{}, errors.Errorf("shape %q: want RxC", shape)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return shapeOps{}, errors.Wrapf(err, "shape %q: rows", shape)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return shapeOps{}, errors.Wrapf(err, "shape %q: columns", shape)
	}
	ops, ok := registry[fmt.Sprintf("%dx%d", r, c)]
	if !ok {
		return shapeOps{}, errors.Wrapf(ErrUnsupportedShape, "%dx%d (see \"fixmat shapes\")", r, c)
	}

	return ops, nil
}

// shapeKeys lists the registry in row-then-column order.
func shapeKeys() []string {
	all := make([]shapeOps, 0, len(registry))
	for _, s := range registry {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].rows != all[j].rows {
			return all[i].rows < all[j].rows
		}
		return all[i].cols < all[j].cols
	})
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.key()
	}

	return keys
}

func decode[R, C dim.Unsigned](doc []byte) (matrix.Mat[float64, R, C], error) {
	m, err := matrix.DecodeYAML[float64, R, C](doc)
	if err != nil {
		return m, errors.Wrapf(err, "decoding %dx%d matrix", dim.Of[R](), dim.Of[C]())
	}

	return m, nil
}

func render[R, C dim.Unsigned](m matrix.Mat[float64, R, C], output string) (string, error) {
	if output == outputYAML {
		out, err := yaml.Marshal(m)
		if err != nil {
			return "", errors.Wrap(err, "encoding yaml")
		}
		return string(out), nil
	}

	return m.String(), nil
}
