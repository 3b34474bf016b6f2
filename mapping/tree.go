package mapping

import "fmt"

// Tree is an in-memory mapping set. It is a Visitor that records what
// it is fed, merging repeated visits of the same element, and a
// producer that replays its content into other visitors with Accept.
type Tree struct {
	SrcNamespace  string          `json:"srcNamespace"`
	DstNamespaces []string        `json:"dstNamespaces"`
	Metadata      []Metadata      `json:"metadata,omitempty"`
	Classes       []*ClassMapping `json:"classes"`

	classIndex map[string]*ClassMapping

	curClass  *ClassMapping
	curField  *FieldMapping
	curMethod *MethodMapping
	curArg    *ArgMapping
	curVar    *VarMapping
}

type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Element holds what every mapped element has. DstNames is indexed by
// destination namespace; an empty string marks a missing name.
type Element struct {
	SrcName  string   `json:"src"`
	DstNames []string `json:"dst,omitempty"`
	Comment  string   `json:"comment,omitempty"`
}

// DstName returns the destination name in the given namespace, or "".
func (e *Element) DstName(namespace int) string {
	if namespace < 0 || namespace >= len(e.DstNames) {
		return ""
	}
	return e.DstNames[namespace]
}

func (e *Element) setDstName(namespace int, name string) {
	for len(e.DstNames) <= namespace {
		e.DstNames = append(e.DstNames, "")
	}
	e.DstNames[namespace] = name
}

type ClassMapping struct {
	Element
	Fields  []*FieldMapping  `json:"fields,omitempty"`
	Methods []*MethodMapping `json:"methods,omitempty"`
}

type FieldMapping struct {
	Element
	SrcDesc  string   `json:"desc,omitempty"`
	DstDescs []string `json:"dstDescs,omitempty"`
}

type MethodMapping struct {
	Element
	SrcDesc  string        `json:"desc,omitempty"`
	DstDescs []string      `json:"dstDescs,omitempty"`
	Args     []*ArgMapping `json:"args,omitempty"`
	Vars     []*VarMapping `json:"vars,omitempty"`
}

type ArgMapping struct {
	Element
	ArgPosition int `json:"argPos"`
	LvIndex     int `json:"lvIndex"`
}

type VarMapping struct {
	Element
	LvtRowIndex int `json:"lvtRowIndex"`
	LvIndex     int `json:"lvIndex"`
	StartOpIdx  int `json:"startOpIdx"`
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) Class(srcName string) *ClassMapping {
	if t.classIndex == nil {
		t.classIndex = make(map[string]*ClassMapping, len(t.Classes))
		for _, c := range t.Classes {
			t.classIndex[c.SrcName] = c
		}
	}
	return t.classIndex[srcName]
}

func (t *Tree) addClass(srcName string) *ClassMapping {
	if c := t.Class(srcName); c != nil {
		return c
	}
	c := &ClassMapping{Element: Element{SrcName: srcName}}
	t.Classes = append(t.Classes, c)
	t.classIndex[srcName] = c
	return c
}

// Field finds a field by name. An empty desc on either side matches any
// descriptor.
func (c *ClassMapping) Field(srcName, srcDesc string) *FieldMapping {
	for _, f := range c.Fields {
		if f.SrcName == srcName && descMatches(f.SrcDesc, srcDesc) {
			return f
		}
	}
	return nil
}

func (c *ClassMapping) Method(srcName, srcDesc string) *MethodMapping {
	for _, m := range c.Methods {
		if m.SrcName == srcName && descMatches(m.SrcDesc, srcDesc) {
			return m
		}
	}
	return nil
}

func descMatches(a, b string) bool {
	return a == "" || b == "" || a == b
}

// Arg finds an argument by position or, failing that, by local
// variable index. Negative values are unknown and never match.
func (m *MethodMapping) Arg(argPosition, lvIndex int) *ArgMapping {
	for _, a := range m.Args {
		if argPosition >= 0 && a.ArgPosition == argPosition {
			return a
		}
		if lvIndex >= 0 && a.LvIndex == lvIndex {
			return a
		}
	}
	return nil
}

// Var finds a variable by LVT row or, failing that, by local variable
// index and start offset.
func (m *MethodMapping) Var(lvtRowIndex, lvIndex, startOpIdx int) *VarMapping {
	for _, v := range m.Vars {
		if lvtRowIndex >= 0 && v.LvtRowIndex == lvtRowIndex {
			return v
		}
		if lvIndex >= 0 && v.LvIndex == lvIndex && v.StartOpIdx == startOpIdx {
			return v
		}
	}
	return nil
}

func (t *Tree) Flags() Flags {
	return NoFlags
}

// Reset forgets the position of an interrupted visitation. Recorded
// mappings are kept.
func (t *Tree) Reset() {
	t.curClass, t.curField, t.curMethod, t.curArg, t.curVar = nil, nil, nil, nil, nil
}

func (t *Tree) VisitHeader() (bool, error) {
	return true, nil
}

func (t *Tree) VisitNamespaces(src string, dst []string) error {
	t.SrcNamespace = src
	t.DstNamespaces = append([]string(nil), dst...)
	return nil
}

func (t *Tree) VisitMetadata(key, value string) error {
	t.Metadata = append(t.Metadata, Metadata{Key: key, Value: value})
	return nil
}

func (t *Tree) VisitContent() (bool, error) {
	return true, nil
}

func (t *Tree) VisitClass(srcName string) (bool, error) {
	t.Reset()
	t.curClass = t.addClass(srcName)
	return true, nil
}

func (t *Tree) VisitField(srcName, srcDesc string) (bool, error) {
	if t.curClass == nil {
		return false, fmt.Errorf("%w: field %s outside a class", ErrProtocol, srcName)
	}
	f := t.curClass.Field(srcName, srcDesc)
	if f == nil {
		f = &FieldMapping{Element: Element{SrcName: srcName}}
		t.curClass.Fields = append(t.curClass.Fields, f)
	}
	if f.SrcDesc == "" {
		f.SrcDesc = srcDesc
	}
	t.curField, t.curMethod = f, nil
	t.curArg, t.curVar = nil, nil
	return true, nil
}

func (t *Tree) VisitMethod(srcName, srcDesc string) (bool, error) {
	if t.curClass == nil {
		return false, fmt.Errorf("%w: method %s outside a class", ErrProtocol, srcName)
	}
	m := t.curClass.Method(srcName, srcDesc)
	if m == nil {
		m = &MethodMapping{Element: Element{SrcName: srcName}}
		t.curClass.Methods = append(t.curClass.Methods, m)
	}
	if m.SrcDesc == "" {
		m.SrcDesc = srcDesc
	}
	t.curField, t.curMethod = nil, m
	t.curArg, t.curVar = nil, nil
	return true, nil
}

func (t *Tree) VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error) {
	if t.curMethod == nil {
		return false, fmt.Errorf("%w: argument %d outside a method", ErrProtocol, argPosition)
	}
	a := t.curMethod.Arg(argPosition, lvIndex)
	if a == nil {
		a = &ArgMapping{ArgPosition: argPosition, LvIndex: lvIndex}
		t.curMethod.Args = append(t.curMethod.Args, a)
	}
	if srcName != "" {
		a.SrcName = srcName
	}
	t.curArg, t.curVar = a, nil
	return true, nil
}

func (t *Tree) VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error) {
	if t.curMethod == nil {
		return false, fmt.Errorf("%w: variable %d outside a method", ErrProtocol, lvIndex)
	}
	v := t.curMethod.Var(lvtRowIndex, lvIndex, startOpIdx)
	if v == nil {
		v = &VarMapping{LvtRowIndex: lvtRowIndex, LvIndex: lvIndex, StartOpIdx: startOpIdx}
		t.curMethod.Vars = append(t.curMethod.Vars, v)
	}
	if srcName != "" {
		v.SrcName = srcName
	}
	t.curArg, t.curVar = nil, v
	return true, nil
}

func (t *Tree) VisitEnd() (bool, error) {
	t.Reset()
	return true, nil
}

func (t *Tree) element(kind ElementKind) *Element {
	switch {
	case kind == Class && t.curClass != nil:
		return &t.curClass.Element
	case kind == Field && t.curField != nil:
		return &t.curField.Element
	case kind == Method && t.curMethod != nil:
		return &t.curMethod.Element
	case kind == MethodArg && t.curArg != nil:
		return &t.curArg.Element
	case kind == MethodVar && t.curVar != nil:
		return &t.curVar.Element
	}
	return nil
}

func (t *Tree) checkNamespace(namespace int) error {
	if namespace < 0 || namespace >= len(t.DstNamespaces) {
		return fmt.Errorf("%w: %d of %d", ErrNamespaceIndex, namespace, len(t.DstNamespaces))
	}
	return nil
}

func (t *Tree) VisitDstName(kind ElementKind, namespace int, name string) error {
	if err := t.checkNamespace(namespace); err != nil {
		return err
	}
	e := t.element(kind)
	if e == nil {
		return fmt.Errorf("%w: destination name for %s outside its element", ErrProtocol, kind)
	}
	e.setDstName(namespace, name)
	return nil
}

func (t *Tree) VisitDstDesc(kind ElementKind, namespace int, desc string) error {
	if err := t.checkNamespace(namespace); err != nil {
		return err
	}
	var descs *[]string
	switch {
	case kind == Field && t.curField != nil:
		descs = &t.curField.DstDescs
	case kind == Method && t.curMethod != nil:
		descs = &t.curMethod.DstDescs
	default:
		return fmt.Errorf("%w: destination descriptor for %s outside a member", ErrProtocol, kind)
	}
	for len(*descs) <= namespace {
		*descs = append(*descs, "")
	}
	(*descs)[namespace] = desc
	return nil
}

func (t *Tree) VisitElementContent(kind ElementKind) (bool, error) {
	return true, nil
}

func (t *Tree) VisitComment(kind ElementKind, comment string) error {
	e := t.element(kind)
	if e == nil {
		return fmt.Errorf("%w: comment for %s outside its element", ErrProtocol, kind)
	}
	e.Comment = comment
	return nil
}
