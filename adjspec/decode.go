// SPDX-License-Identifier: MIT
//
// decode.go - YAML/JSON adjacency documents to Spec.
//
// Policy:
//   - Walk the yaml.v3 node tree rather than decoding into a Go map, so
//     document order and positions survive.
//   - Fail on the first malformed node.

package adjspec

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagMerge = "!!merge"
)

// Decode reads a whole document from r and decodes it.
func Decode(r io.Reader, opts ...Option) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("adjspec: read: %w", err)
	}
	return DecodeBytes(data, opts...)
}

// LoadFile decodes the document stored at path.
func LoadFile(path string, opts ...Option) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("adjspec: load %s: %w", path, err)
	}
	return DecodeBytes(data, opts...)
}

// DecodeBytes decodes data. An empty document, or one whose root is null,
// yields an empty Spec. A stream of several documents is rejected.
//
// Errors:
//   - ErrMalformed: syntax errors and any shape violation, with position.
//   - ErrTooManyNodes: more distinct identifiers than WithMaxNodes allows.
func DecodeBytes(data []byte, opts ...Option) (*Spec, error) {
	cfg := newConfig(opts...)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &Spec{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// Exactly one document per input.
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == io.EOF:
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		return nil, malformedf(&extra, "multiple documents are not supported")
	}

	d := decoder{cfg: cfg, seen: make(map[string]struct{})}
	spec, err := d.document(&doc)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("adjspec: decoded",
		slog.Int("entries", len(spec.entries)),
		slog.Int("nodes", len(d.seen)),
	)
	return spec, nil
}

// decoder carries per-document state.
type decoder struct {
	cfg  config
	seen map[string]struct{} // every identifier mentioned so far
}

func (d *decoder) document(doc *yaml.Node) (*Spec, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return &Spec{}, nil
	}
	root := resolve(doc.Content[0])
	if isNull(root) {
		return &Spec{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, malformedf(root, "top level must be a mapping, got %s", kindName(root.Kind))
	}

	spec := &Spec{entries: make([]Entry, 0, len(root.Content)/2)}
	keys := make(map[string]struct{}, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		id, err := d.key(root.Content[i], keys)
		if err != nil {
			return nil, err
		}
		e := Entry{ID: id, Line: root.Content[i].Line}
		if e.Neighbors, err = d.neighbors(id, resolve(root.Content[i+1])); err != nil {
			return nil, err
		}
		spec.entries = append(spec.entries, e)
	}

	return spec, nil
}

// neighbors decodes the row of id; null means an isolated node.
func (d *decoder) neighbors(id string, row *yaml.Node) ([]Neighbor, error) {
	if isNull(row) {
		return nil, nil
	}
	if row.Kind != yaml.MappingNode {
		return nil, malformedf(row, "value of %q must be a mapping, got %s", id, kindName(row.Kind))
	}

	out := make([]Neighbor, 0, len(row.Content)/2)
	keys := make(map[string]struct{}, len(row.Content)/2)
	for i := 0; i+1 < len(row.Content); i += 2 {
		to, err := d.key(row.Content[i], keys)
		if err != nil {
			return nil, err
		}
		w, err := weight(id, to, resolve(row.Content[i+1]))
		if err != nil {
			return nil, err
		}
		out = append(out, Neighbor{ID: to, Weight: w, Line: row.Content[i].Line})
	}

	return out, nil
}

// key validates a mapping key, rejects duplicates within its mapping and
// enforces the node limit.
func (d *decoder) key(n *yaml.Node, dup map[string]struct{}) (string, error) {
	n = resolve(n)
	if n.Kind != yaml.ScalarNode {
		return "", malformedf(n, "key must be a scalar, got %s", kindName(n.Kind))
	}
	if n.ShortTag() == tagMerge {
		return "", malformedf(n, "merge keys are not supported")
	}
	if n.Value == "" || isNull(n) {
		return "", malformedf(n, "empty identifier")
	}
	if _, ok := dup[n.Value]; ok {
		return "", malformedf(n, "duplicate key %q", n.Value)
	}
	dup[n.Value] = struct{}{}

	if _, ok := d.seen[n.Value]; !ok {
		if d.cfg.maxNodes > 0 && len(d.seen) >= d.cfg.maxNodes {
			return "", fmt.Errorf("%w: line %d: %q exceeds limit %d", ErrTooManyNodes, n.Line, n.Value, d.cfg.maxNodes)
		}
		d.seen[n.Value] = struct{}{}
	}

	return n.Value, nil
}

// weight decodes an edge weight; null means the default 0.
func weight(from, to string, n *yaml.Node) (float64, error) {
	if isNull(n) {
		return 0, nil
	}
	if n.Kind != yaml.ScalarNode {
		return 0, malformedf(n, "weight of %q -> %q must be a number, got %s", from, to, kindName(n.Kind))
	}
	var w float64
	if err := n.Decode(&w); err != nil {
		return 0, malformedf(n, "weight of %q -> %q: %q is not a number", from, to, n.Value)
	}
	if math.IsNaN(w) {
		return 0, malformedf(n, "weight of %q -> %q is NaN", from, to)
	}

	return w, nil
}

// resolve follows alias nodes to their anchor.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull
}
