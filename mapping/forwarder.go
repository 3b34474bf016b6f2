package mapping

// Forwarder passes every call on to Next. Filters embed it and override
// the callbacks they act on.
type Forwarder struct {
	Next Visitor
}

func (f *Forwarder) Flags() Flags { return f.Next.Flags() }

func (f *Forwarder) Reset() { f.Next.Reset() }

func (f *Forwarder) VisitHeader() (bool, error) { return f.Next.VisitHeader() }

func (f *Forwarder) VisitNamespaces(src string, dst []string) error {
	return f.Next.VisitNamespaces(src, dst)
}

func (f *Forwarder) VisitMetadata(key, value string) error {
	return f.Next.VisitMetadata(key, value)
}

func (f *Forwarder) VisitContent() (bool, error) { return f.Next.VisitContent() }

func (f *Forwarder) VisitClass(srcName string) (bool, error) {
	return f.Next.VisitClass(srcName)
}

func (f *Forwarder) VisitField(srcName, srcDesc string) (bool, error) {
	return f.Next.VisitField(srcName, srcDesc)
}

func (f *Forwarder) VisitMethod(srcName, srcDesc string) (bool, error) {
	return f.Next.VisitMethod(srcName, srcDesc)
}

func (f *Forwarder) VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error) {
	return f.Next.VisitMethodArg(argPosition, lvIndex, srcName)
}

func (f *Forwarder) VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error) {
	return f.Next.VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx, srcName)
}

func (f *Forwarder) VisitEnd() (bool, error) { return f.Next.VisitEnd() }

func (f *Forwarder) VisitDstName(kind ElementKind, namespace int, name string) error {
	return f.Next.VisitDstName(kind, namespace, name)
}

func (f *Forwarder) VisitDstDesc(kind ElementKind, namespace int, desc string) error {
	return f.Next.VisitDstDesc(kind, namespace, desc)
}

func (f *Forwarder) VisitElementContent(kind ElementKind) (bool, error) {
	return f.Next.VisitElementContent(kind)
}

func (f *Forwarder) VisitComment(kind ElementKind, comment string) error {
	return f.Next.VisitComment(kind, comment)
}
