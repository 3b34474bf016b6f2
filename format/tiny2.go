package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/jmap/mapping"
)

var commentEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\x00", `\0`,
)

// Tiny2Writer is a mapping.Visitor writing the Tiny v2 text format.
// Every field and method must come with a source descriptor.
type Tiny2Writer struct {
	mapping.Defaults

	w              io.Writer
	escapeComments bool
	inHeader       bool
	dstNames       []string
}

type Tiny2Option func(*Tiny2Writer)

// WithEscapedComments controls whether backslashes and control
// characters in comments are escaped. Escaping is on by default.
func WithEscapedComments(escape bool) Tiny2Option {
	return func(tw *Tiny2Writer) {
		tw.escapeComments = escape
	}
}

func NewTiny2Writer(w io.Writer, opts ...Tiny2Option) *Tiny2Writer {
	tw := &Tiny2Writer{w: w, escapeComments: true}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

func (tw *Tiny2Writer) write(parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(tw.w, p); err != nil {
			return fmt.Errorf("write tiny v2: %w", err)
		}
	}
	return nil
}

func (tw *Tiny2Writer) Flags() mapping.Flags {
	return mapping.NewFlags(
		mapping.NeedsHeaderMetadata,
		mapping.NeedsUniqueness,
		mapping.NeedsSrcFieldDesc,
		mapping.NeedsSrcMethodDesc,
	)
}

func (tw *Tiny2Writer) Reset() {
	tw.inHeader = false
	tw.dstNames = nil
}

func (tw *Tiny2Writer) VisitNamespaces(src string, dst []string) error {
	tw.dstNames = make([]string, len(dst))
	tw.inHeader = true

	if err := tw.write("tiny\tv2\t0\t", src); err != nil {
		return err
	}
	for _, ns := range dst {
		if err := tw.write("\t", ns); err != nil {
			return err
		}
	}
	return tw.write("\n")
}

// VisitMetadata writes header metadata as a property line. Metadata
// visited among the classes has no place in the format and is dropped;
// a Checker rejects it because the writer declares NeedsHeaderMetadata.
func (tw *Tiny2Writer) VisitMetadata(key, value string) error {
	if !tw.inHeader {
		return nil
	}
	if value == "" {
		return tw.write("\t", key, "\n")
	}
	return tw.write("\t", key, "\t", value, "\n")
}

func (tw *Tiny2Writer) VisitContent() (bool, error) {
	tw.inHeader = false
	return true, nil
}

func (tw *Tiny2Writer) VisitClass(srcName string) (bool, error) {
	tw.inHeader = false
	return true, tw.write("c\t", srcName)
}

func (tw *Tiny2Writer) VisitField(srcName, srcDesc string) (bool, error) {
	if srcDesc == "" {
		return false, fmt.Errorf("tiny v2 field %s: %w", srcName, mapping.ErrMissingSrcDesc)
	}
	return true, tw.write("\tf\t", srcDesc, "\t", srcName)
}

func (tw *Tiny2Writer) VisitMethod(srcName, srcDesc string) (bool, error) {
	if srcDesc == "" {
		return false, fmt.Errorf("tiny v2 method %s: %w", srcName, mapping.ErrMissingSrcDesc)
	}
	return true, tw.write("\tm\t", srcDesc, "\t", srcName)
}

func (tw *Tiny2Writer) VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error) {
	return true, tw.write("\t\tp\t", strconv.Itoa(lvIndex), "\t", srcName)
}

func (tw *Tiny2Writer) VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error) {
	return true, tw.write(
		"\t\tv\t", strconv.Itoa(lvIndex),
		"\t", strconv.Itoa(startOpIdx),
		"\t", strconv.Itoa(max(lvtRowIndex, -1)),
		"\t", srcName,
	)
}

func (tw *Tiny2Writer) VisitDstName(kind mapping.ElementKind, namespace int, name string) error {
	if namespace < 0 || namespace >= len(tw.dstNames) {
		return fmt.Errorf("tiny v2 %s %s: %w", kind, name, mapping.ErrNamespaceIndex)
	}
	tw.dstNames[namespace] = name
	return nil
}

// VisitElementContent completes the element's line with its destination
// names; missing names become empty columns.
func (tw *Tiny2Writer) VisitElementContent(kind mapping.ElementKind) (bool, error) {
	for _, name := range tw.dstNames {
		if err := tw.write("\t", name); err != nil {
			return false, err
		}
	}
	clear(tw.dstNames)
	return true, tw.write("\n")
}

func (tw *Tiny2Writer) VisitComment(kind mapping.ElementKind, comment string) error {
	if err := tw.write(strings.Repeat("\t", kind.Level()), "\tc\t"); err != nil {
		return err
	}
	if tw.escapeComments {
		comment = commentEscaper.Replace(comment)
	}
	return tw.write(comment, "\n")
}
