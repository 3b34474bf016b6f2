package descriptor

import "strings"

type Kind uint8

const (
	KindVoid Kind = iota
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBoolean
	KindChar
	KindObject
	KindArray
)

var baseTypes = [...]struct {
	desc byte
	name string
}{
	KindVoid:    {'V', "void"},
	KindByte:    {'B', "byte"},
	KindShort:   {'S', "short"},
	KindInt:     {'I', "int"},
	KindLong:    {'J', "long"},
	KindFloat:   {'F', "float"},
	KindDouble:  {'D', "double"},
	KindBoolean: {'Z', "boolean"},
	KindChar:    {'C', "char"},
}

// Type is a JVM type: an object type, an array of another type, a
// primitive, or void. Types are immutable values; the element of an
// array is owned by the array. The zero value is void.
type Type struct {
	kind  Kind
	class ClassName
	elem  *Type
}

var (
	Void    = Type{kind: KindVoid}
	Byte    = Type{kind: KindByte}
	Short   = Type{kind: KindShort}
	Int     = Type{kind: KindInt}
	Long    = Type{kind: KindLong}
	Float   = Type{kind: KindFloat}
	Double  = Type{kind: KindDouble}
	Boolean = Type{kind: KindBoolean}
	Char    = Type{kind: KindChar}
)

func Object(name ClassName) Type {
	return Type{kind: KindObject, class: name}
}

func ArrayOf(elem Type) Type {
	return Type{kind: KindArray, elem: &elem}
}

func (t Type) Kind() Kind {
	return t.kind
}

// Elem returns the element type of an array type.
func (t Type) Elem() (Type, bool) {
	if t.kind != KindArray {
		return Type{}, false
	}
	return *t.elem, true
}

func (t Type) IsArray() bool {
	return t.kind == KindArray
}

// Array returns an array type with t as its element type.
func (t Type) Array() Type {
	return ArrayOf(t)
}

func (t Type) ArrayDepth() int {
	depth := 0
	for t.kind == KindArray {
		depth++
		t = *t.elem
	}
	return depth
}

// Descriptor renders the JVM descriptor, e.g. Ljava/lang/String; or [I.
func (t Type) Descriptor() string {
	var sb strings.Builder
	t.writeDescriptor(&sb)
	return sb.String()
}

func (t Type) writeDescriptor(sb *strings.Builder) {
	switch t.kind {
	case KindObject:
		sb.WriteByte('L')
		sb.WriteString(t.class.InternalName())
		sb.WriteByte(';')
	case KindArray:
		sb.WriteByte('[')
		t.elem.writeDescriptor(sb)
	default:
		sb.WriteByte(baseTypes[t.kind].desc)
	}
}

// JavaName renders the type the way Java source spells it, e.g.
// java.lang.String[] or boolean.
func (t Type) JavaName() string {
	switch t.kind {
	case KindObject:
		return t.class.BinaryName()
	case KindArray:
		return t.elem.JavaName() + "[]"
	default:
		return baseTypes[t.kind].name
	}
}

// Size is the number of local variable slots a value of this type
// occupies.
func (t Type) Size() int {
	switch t.kind {
	case KindVoid:
		return 0
	case KindLong, KindDouble:
		return 2
	default:
		return 1
	}
}

func (t Type) Equal(o Type) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindObject:
		return t.class == o.class
	case KindArray:
		return t.elem.Equal(*o.elem)
	default:
		return true
	}
}

func (t Type) String() string {
	return t.Descriptor()
}
