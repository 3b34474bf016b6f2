package mapping

import "fmt"

// Accept replays the tree into v, honouring every skip v returns and
// repeating the pass for as long as v's VisitEnd asks for it.
func (t *Tree) Accept(v Visitor) error {
	if err := t.satisfies(v.Flags()); err != nil {
		return err
	}
	return Drive(v, t.acceptPass)
}

// satisfies reports requirements the tree cannot meet before anything is
// visited.
func (t *Tree) satisfies(flags Flags) error {
	for _, c := range t.Classes {
		for _, f := range c.Fields {
			if f.SrcDesc == "" && flags.Has(NeedsSrcFieldDesc) {
				return fmt.Errorf("field %s.%s: %w", c.SrcName, f.SrcName, ErrMissingSrcDesc)
			}
			if flags.Has(NeedsDstFieldDesc) && !complete(f.DstDescs, len(t.DstNamespaces)) {
				return fmt.Errorf("field %s.%s: %w", c.SrcName, f.SrcName, ErrMissingDstDesc)
			}
		}
		for _, m := range c.Methods {
			if m.SrcDesc == "" && flags.Has(NeedsSrcMethodDesc) {
				return fmt.Errorf("method %s.%s: %w", c.SrcName, m.SrcName, ErrMissingSrcDesc)
			}
			if flags.Has(NeedsDstMethodDesc) && !complete(m.DstDescs, len(t.DstNamespaces)) {
				return fmt.Errorf("method %s.%s: %w", c.SrcName, m.SrcName, ErrMissingDstDesc)
			}
		}
	}
	return nil
}

func complete(descs []string, n int) bool {
	if len(descs) < n {
		return false
	}
	for _, d := range descs[:n] {
		if d == "" {
			return false
		}
	}
	return true
}

func (t *Tree) acceptPass(v Visitor) (bool, error) {
	ok, err := v.VisitHeader()
	if err != nil {
		return false, err
	}
	if ok {
		if err := v.VisitNamespaces(t.SrcNamespace, t.DstNamespaces); err != nil {
			return false, err
		}
		for _, m := range t.Metadata {
			if err := v.VisitMetadata(m.Key, m.Value); err != nil {
				return false, err
			}
		}
	}

	ok, err = v.VisitContent()
	if err != nil {
		return false, err
	}
	if ok {
		for _, c := range t.Classes {
			if err := t.acceptClass(v, c); err != nil {
				return false, err
			}
		}
	}

	return v.VisitEnd()
}

func (t *Tree) acceptClass(v Visitor, c *ClassMapping) error {
	ok, err := v.VisitClass(c.SrcName)
	if err != nil || !ok {
		return err
	}
	ok, err = acceptElement(v, Class, &c.Element, nil)
	if err != nil || !ok {
		return err
	}

	for _, f := range c.Fields {
		ok, err := v.VisitField(f.SrcName, f.SrcDesc)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		ok, err = acceptElement(v, Field, &f.Element, f.DstDescs)
		if err != nil {
			return err
		}
		if ok {
			if err := acceptComment(v, Field, &f.Element); err != nil {
				return err
			}
		}
	}

	for _, m := range c.Methods {
		if err := acceptMethod(v, m); err != nil {
			return err
		}
	}

	return acceptComment(v, Class, &c.Element)
}

func acceptMethod(v Visitor, m *MethodMapping) error {
	ok, err := v.VisitMethod(m.SrcName, m.SrcDesc)
	if err != nil || !ok {
		return err
	}
	ok, err = acceptElement(v, Method, &m.Element, m.DstDescs)
	if err != nil || !ok {
		return err
	}

	for _, a := range m.Args {
		ok, err := v.VisitMethodArg(a.ArgPosition, a.LvIndex, a.SrcName)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		ok, err = acceptElement(v, MethodArg, &a.Element, nil)
		if err != nil {
			return err
		}
		if ok {
			if err := acceptComment(v, MethodArg, &a.Element); err != nil {
				return err
			}
		}
	}

	for _, lv := range m.Vars {
		ok, err := v.VisitMethodVar(lv.LvtRowIndex, lv.LvIndex, lv.StartOpIdx, lv.SrcName)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		ok, err = acceptElement(v, MethodVar, &lv.Element, nil)
		if err != nil {
			return err
		}
		if ok {
			if err := acceptComment(v, MethodVar, &lv.Element); err != nil {
				return err
			}
		}
	}

	return acceptComment(v, Method, &m.Element)
}

// acceptElement visits the destination names and descriptors of an
// element and reports whether its content should follow.
func acceptElement(v Visitor, kind ElementKind, e *Element, dstDescs []string) (bool, error) {
	for ns, name := range e.DstNames {
		if name == "" {
			continue
		}
		if err := v.VisitDstName(kind, ns, name); err != nil {
			return false, err
		}
	}
	for ns, desc := range dstDescs {
		if desc == "" {
			continue
		}
		if err := v.VisitDstDesc(kind, ns, desc); err != nil {
			return false, err
		}
	}
	return v.VisitElementContent(kind)
}

func acceptComment(v Visitor, kind ElementKind, e *Element) error {
	if e.Comment == "" {
		return nil
	}
	return v.VisitComment(kind, e.Comment)
}
