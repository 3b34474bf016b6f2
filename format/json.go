package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/jmap/mapping"
)

type JSONEncoder struct {
	w    io.Writer
	tree *mapping.Tree
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree *mapping.Tree) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.tree, "", "  ")
}

// DecodeJSON reads a tree written by JSONEncoder.
func DecodeJSON(r io.Reader) (*mapping.Tree, error) {
	tree := mapping.NewTree()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(tree); err != nil {
		return nil, fmt.Errorf("decode json mappings: %w", err)
	}
	return tree, nil
}

var _ mapping.Visitor = (*JSONWriter)(nil)

// JSONWriter collects the visited mappings into a tree and encodes it
// once the final pass ends.
type JSONWriter struct {
	*mapping.Tree
	enc *JSONEncoder
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{Tree: mapping.NewTree(), enc: NewJSONEncoder(w)}
}

func (jw *JSONWriter) Reset() {
	jw.Tree = mapping.NewTree()
}

func (jw *JSONWriter) VisitEnd() (bool, error) {
	if _, err := jw.Tree.VisitEnd(); err != nil {
		return false, err
	}
	if err := jw.enc.Encode(jw.Tree); err != nil {
		return false, fmt.Errorf("encode json mappings: %w", err)
	}
	return true, nil
}
