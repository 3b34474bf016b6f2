package mapping

import (
	"fmt"
	"strings"
)

// recorder is a visitor that logs every call it receives and skips the
// calls listed in skip.
type recorder struct {
	flags Flags
	calls []string
	skip  map[string]bool
	ends  []bool
}

func newRecorder(flags Flags, skip ...string) *recorder {
	r := &recorder{flags: flags, skip: make(map[string]bool)}
	for _, s := range skip {
		r.skip[s] = true
	}
	return r
}

func (r *recorder) rec(format string, args ...any) bool {
	call := fmt.Sprintf(format, args...)
	r.calls = append(r.calls, call)
	return !r.skip[call]
}

func (r *recorder) String() string {
	return strings.Join(r.calls, "\n")
}

func (r *recorder) Flags() Flags { return r.flags }

func (r *recorder) Reset() { r.rec("reset") }

func (r *recorder) VisitHeader() (bool, error) { return r.rec("header"), nil }

func (r *recorder) VisitNamespaces(src string, dst []string) error {
	r.rec("namespaces %s %v", src, dst)
	return nil
}

func (r *recorder) VisitMetadata(key, value string) error {
	r.rec("metadata %s=%s", key, value)
	return nil
}

func (r *recorder) VisitContent() (bool, error) { return r.rec("content"), nil }

func (r *recorder) VisitClass(srcName string) (bool, error) {
	return r.rec("class %s", srcName), nil
}

func (r *recorder) VisitField(srcName, srcDesc string) (bool, error) {
	return r.rec("field %s %s", srcName, srcDesc), nil
}

func (r *recorder) VisitMethod(srcName, srcDesc string) (bool, error) {
	return r.rec("method %s %s", srcName, srcDesc), nil
}

func (r *recorder) VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error) {
	return r.rec("arg %d %d %s", argPosition, lvIndex, srcName), nil
}

func (r *recorder) VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error) {
	return r.rec("var %d %d %d %s", lvtRowIndex, lvIndex, startOpIdx, srcName), nil
}

func (r *recorder) VisitEnd() (bool, error) {
	r.rec("end")
	if len(r.ends) == 0 {
		return true, nil
	}
	done := r.ends[0]
	r.ends = r.ends[1:]
	return done, nil
}

func (r *recorder) VisitDstName(kind ElementKind, namespace int, name string) error {
	r.rec("dst %s %d %s", kind, namespace, name)
	return nil
}

func (r *recorder) VisitDstDesc(kind ElementKind, namespace int, desc string) error {
	r.rec("desc %s %d %s", kind, namespace, desc)
	return nil
}

func (r *recorder) VisitElementContent(kind ElementKind) (bool, error) {
	return r.rec("content %s", kind), nil
}

func (r *recorder) VisitComment(kind ElementKind, comment string) error {
	r.rec("comment %s %s", kind, comment)
	return nil
}

func testTree() *Tree {
	return &Tree{
		SrcNamespace:  "named",
		DstNamespaces: []string{"intermediary"},
		Metadata:      []Metadata{{Key: "k", Value: "v"}},
		Classes: []*ClassMapping{
			{
				Element: Element{SrcName: "a", DstNames: []string{"b"}, Comment: "class comment"},
				Fields: []*FieldMapping{
					{Element: Element{SrcName: "f", DstNames: []string{"g"}, Comment: "note"}, SrcDesc: "I"},
				},
				Methods: []*MethodMapping{
					{
						Element: Element{SrcName: "m", DstNames: []string{"n"}},
						SrcDesc: "()V",
						Args: []*ArgMapping{
							{Element: Element{SrcName: "x", DstNames: []string{"y"}}, ArgPosition: 0, LvIndex: 1},
						},
					},
				},
			},
			{Element: Element{SrcName: "c"}},
		},
	}
}

var fullPass = []string{
	"header",
	"namespaces named [intermediary]",
	"metadata k=v",
	"content",
	"class a",
	"dst Class 0 b",
	"content Class",
	"field f I",
	"dst Field 0 g",
	"content Field",
	"comment Field note",
	"method m ()V",
	"dst Method 0 n",
	"content Method",
	"arg 0 1 x",
	"dst MethodArg 0 y",
	"content MethodArg",
	"comment Class class comment",
	"class c",
	"content Class",
	"end",
}
