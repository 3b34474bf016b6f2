package mapping

// ClassFilter skips every class whose source name Keep rejects,
// together with all of its members.
type ClassFilter struct {
	Forwarder
	Keep func(srcName string) bool
}

func NewClassFilter(next Visitor, keep func(srcName string) bool) *ClassFilter {
	return &ClassFilter{Forwarder: Forwarder{Next: next}, Keep: keep}
}

func (f *ClassFilter) VisitClass(srcName string) (bool, error) {
	if !f.Keep(srcName) {
		log.Debugf("skipping class %s", srcName)
		return false, nil
	}
	return f.Next.VisitClass(srcName)
}
