// Package mapping defines the push-based visitor protocol that streams
// JVM obfuscation mappings from producers to consumers.
//
// A producer calls the visitor in this order (lowercase items refer to
// other lines):
//
//	overall: header -> content -> End -> [overall again]
//	header:  Header -> Namespaces [-> Metadata]*
//	content: Content [-> class|Metadata]*
//	class:   Class [-> DstName]* -> ElementContent [-> field|method|Comment]*
//	field:   Field [-> DstName|DstDesc]* -> ElementContent [-> Comment]
//	method:  Method [-> DstName|DstDesc]* -> ElementContent [-> arg|var|Comment]*
//	arg:     Arg [-> DstName]* -> ElementContent [-> Comment]
//	var:     Var [-> DstName]* -> ElementContent [-> Comment]
//
// Header, Content, the element callbacks and ElementContent return a
// bool. False skips the rest of the item in the listing above: skipping
// in Class skips its destination names, its ElementContent and all of
// its members, and the producer continues with the next class or End.
// Errors abort the pass.
//
// VisitEnd returning false requests another complete pass with the same
// namespaces and data. Only visitors declaring NeedsMultiplePasses may
// do so. Reset prepares a visitor for an unrelated visitation.
package mapping

// Visitor receives mapping data. Embed Defaults to inherit the optional
// callbacks.
type Visitor interface {
	Flags() Flags

	// Reset the visitor, including chained visitors, for another
	// independent visitation.
	Reset()

	VisitHeader() (bool, error)

	// VisitNamespaces announces the namespaces of the pass. dst may be
	// empty for single-namespace mappings; destination callbacks index
	// into it.
	VisitNamespaces(src string, dst []string) error
	VisitMetadata(key, value string) error

	VisitContent() (bool, error)

	VisitClass(srcName string) (bool, error)
	// VisitField visits a field. An empty srcDesc means the descriptor
	// is unknown.
	VisitField(srcName, srcDesc string) (bool, error)
	VisitMethod(srcName, srcDesc string) (bool, error)
	// VisitMethodArg visits a method argument; -1 marks an unknown
	// position or index and an empty srcName an unnamed argument.
	VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error)
	VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error)

	// VisitEnd finishes the pass. It returns true if the pass is final.
	VisitEnd() (bool, error)

	VisitDstName(kind ElementKind, namespace int, name string) error
	VisitDstDesc(kind ElementKind, namespace int, desc string) error

	// VisitElementContent is called once all destination names and
	// descriptors of the current element have been passed, before its
	// children and comment. It decides whether those are visited.
	VisitElementContent(kind ElementKind) (bool, error)

	// VisitComment attaches a comment, possibly spanning several lines,
	// to the last content-visited element of the given kind.
	VisitComment(kind ElementKind, comment string) error
}

// Defaults implements the optional Visitor callbacks: headers and
// content are visited, metadata and destination descriptors are ignored,
// and a single pass suffices.
type Defaults struct{}

func (Defaults) Reset() {}

func (Defaults) VisitHeader() (bool, error) { return true, nil }

func (Defaults) VisitMetadata(key, value string) error { return nil }

func (Defaults) VisitContent() (bool, error) { return true, nil }

func (Defaults) VisitEnd() (bool, error) { return true, nil }

func (Defaults) VisitDstDesc(kind ElementKind, namespace int, desc string) error { return nil }
