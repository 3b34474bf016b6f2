package descriptor

import "strings"

// ClassName is a JVM class name held in its internal, slash-delimited
// form (java/lang/String). The zero value is the empty name.
type ClassName struct {
	internal string
}

func FromInternalName(name string) ClassName {
	return ClassName{internal: name}
}

func FromBinaryName(name string) ClassName {
	return ClassName{internal: BinaryToInternalName(name)}
}

func (n ClassName) InternalName() string {
	return n.internal
}

func (n ClassName) BinaryName() string {
	return InternalToBinaryName(n.internal)
}

// Type wraps the name into an object type.
func (n ClassName) Type() Type {
	return Object(n)
}

func (n ClassName) String() string {
	return n.internal
}

func InternalToBinaryName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func BinaryToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
