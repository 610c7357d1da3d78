// SPDX-License-Identifier: MIT

// Package matrix: validators for runtime data entering a compile-time shape.
//
// Contract:
//   - Validators never panic; they return ErrShapeMismatch wrapped with the
//     offending detail.
//   - validateRows reports every problem it finds, not only the first, so a
//     caller fixing a file sees the whole picture at once.
package matrix

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// validateRows checks len(rows) == nr and len(rows[i]) == nc for every i.
func validateRows[E Scalar](rows [][]E, nr, nc int) error {
	var err error
	if len(rows) != nr {
		err = multierr.Append(err, errors.Wrapf(ErrShapeMismatch, "got %d rows, want %d", len(rows), nr))
	}
	for i, row := range rows {
		if len(row) != nc {
			err = multierr.Append(err, errors.Wrapf(ErrShapeMismatch, "row %d: got %d columns, want %d", i, len(row), nc))
		}
	}

	return err
}

// validateLen checks that a flat buffer holds exactly nr*nc values.
func validateLen(n, nr, nc int) error {
	if n != nr*nc {
		return errors.Wrapf(ErrShapeMismatch, "got %d values, want %d (%dx%d)", n, nr*nc, nr, nc)
	}

	return nil
}
