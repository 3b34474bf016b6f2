package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dhamidi/jmap/mapping"
)

type WriterFunc func(w io.Writer) mapping.Visitor

var writers = map[string]WriterFunc{
	"tiny2": func(w io.Writer) mapping.Visitor { return NewTiny2Writer(w) },
	"json":  func(w io.Writer) mapping.Visitor { return NewJSONWriter(w) },
}

// NewWriter returns the mapping writer registered under name.
func NewWriter(name string, w io.Writer) (mapping.Visitor, error) {
	fn, ok := writers[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (expected %s)", name, strings.Join(Names(), ", "))
	}
	return fn(w), nil
}

func Names() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
