// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fixmat/dim"
)

// MarshalYAML encodes m as a sequence of R rows, each a sequence of C values.
func (m Mat[E, R, C]) MarshalYAML() (interface{}, error) {
	return m.ToRows(), nil
}

// UnmarshalYAML decodes a sequence of rows into m, replacing its buffer.
// Errors: ErrShapeMismatch when the document does not hold exactly R rows of
// C values (all offending rows are listed); decode errors from yaml.v3 are
// wrapped with the node position.
//
// yaml.v3 does not call UnmarshalYAML for a null value ("~", "null", an
// empty or comment-only document), so such input leaves m untouched: a zero
// Mat stays all-zero with no error. Use DecodeYAML to reject it.
func (m *Mat[E, R, C]) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]E
	if err := value.Decode(&rows); err != nil {
		return matErrorf(ctxUnmarshal, errors.Wrapf(err, "line %d", value.Line))
	}
	out, err := FromRows[E, R, C](rows)
	if err != nil {
		return matErrorf(ctxUnmarshal, errors.Wrapf(err, "line %d", value.Line))
	}
	*m = out

	return nil
}

// DecodeYAML decodes a whole document that must be a sequence of R rows of C
// values. Unlike yaml.Unmarshal into a Mat, a null, empty or comment-only
// document is rejected with ErrShapeMismatch.
func DecodeYAML[E Scalar, R, C dim.Unsigned](doc []byte) (Mat[E, R, C], error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return Mat[E, R, C]{}, matErrorf(ctxDecode, err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.SequenceNode {
		return Mat[E, R, C]{}, matErrorf(ctxDecode, errors.Wrapf(ErrShapeMismatch, "line %d: want a sequence of rows", node.Line))
	}

	var m Mat[E, R, C]
	if err := node.Decode(&m); err != nil {
		return Mat[E, R, C]{}, err
	}

	return m, nil
}
