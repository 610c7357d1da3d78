// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// matrixFlags are shared by commands that read one matrix file.
type matrixFlags struct {
	file   string
	shape  string
	output string
}

func (f *matrixFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file holding a list of rows (- for stdin)")
	cmd.Flags().StringVarP(&f.shape, "shape", "s", "", "matrix shape as RxC, e.g. 2x3")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("shape")
}

// load resolves the shape and reads the document.
func (f *matrixFlags) load(cmd *cobra.Command) (shapeOps, []byte, error) {
	ops, err := lookupShape(f.shape)
	if err != nil {
		return shapeOps{}, nil, err
	}
	if f.output != outputText && f.output != outputYAML {
		return shapeOps{}, nil, errors.Errorf("unknown output format %q (want %s or %s)", f.output, outputText, outputYAML)
	}

	var doc []byte
	if f.file == "-" {
		doc, err = io.ReadAll(cmd.InOrStdin())
	} else {
		doc, err = os.ReadFile(f.file)
	}
	if err != nil {
		return shapeOps{}, nil, errors.Wrapf(err, "reading %s", f.file)
	}
	slog.Debug("loaded matrix document", "file", f.file, "shape", ops.key(), "bytes", len(doc))

	return ops, doc, nil
}

func newShowCmd() *cobra.Command {
	var f matrixFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Decode a matrix and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, doc, err := f.load(cmd)
			if err != nil {
				return err
			}
			out, err := ops.show(doc, f.output)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	f.register(cmd)

	return cmd
}

func newTransposeCmd() *cobra.Command {
	var f matrixFlags
	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Decode a matrix and print its transpose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, doc, err := f.load(cmd)
			if err != nil {
				return err
			}
			out, err := ops.transpose(doc, f.output)
			if err != nil {
				return err
			}
			slog.Debug("transposed", "from", ops.key(), "to", fmt.Sprintf("%dx%d", ops.cols, ops.rows))
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	f.register(cmd)

	return cmd
}

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List supported shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(shapeKeys(), " "))
			return err
		},
	}
}
