package mapping

//go:generate go tool stringer -type=ElementKind -output=elementkind_string.go

// ElementKind is the kind of a nameable element in a mapping set.
type ElementKind int

const (
	// Class covers interfaces, enums, annotations and nested classes alike.
	Class ElementKind = iota
	Field
	Method
	MethodArg
	MethodVar
)

// Level is the nesting depth of the kind: 0 for classes, 1 for members
// and 2 for method arguments and variables.
func (k ElementKind) Level() int {
	switch k {
	case Field, Method:
		return 1
	case MethodArg, MethodVar:
		return 2
	default:
		return 0
	}
}
