// SPDX-License-Identifier: MIT

package adjspec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed indicates the document is not a valid adjacency specification.
	ErrMalformed = errors.New("adjspec: malformed document")

	// ErrTooManyNodes indicates the document mentions more identifiers than WithMaxNodes allows.
	ErrTooManyNodes = errors.New("adjspec: too many nodes")
)

// malformedf wraps ErrMalformed with the position of n.
func malformedf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d col %d: %s", ErrMalformed, n.Line, n.Column, fmt.Sprintf(format, args...))
}

// kindName renders a yaml node kind for error messages.
func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
