package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedDescriptor = errors.New("malformed descriptor")

type MethodDescriptor struct {
	Params []Type
	Return Type
}

func (md MethodDescriptor) Descriptor() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, p := range md.Params {
		p.writeDescriptor(&sb)
	}
	sb.WriteByte(')')
	md.Return.writeDescriptor(&sb)
	return sb.String()
}

// JavaSignature renders the parameter list and return type in Java
// syntax, e.g. (int, java.lang.String) void.
func (md MethodDescriptor) JavaSignature() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range md.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.JavaName())
	}
	sb.WriteString(") ")
	sb.WriteString(md.Return.JavaName())
	return sb.String()
}

// ArgLvIndex returns the local variable index of the parameter at
// argPos. Instance methods reserve slot 0 for this.
func (md MethodDescriptor) ArgLvIndex(argPos int, static bool) int {
	lv := 0
	if !static {
		lv = 1
	}
	for i := 0; i < argPos && i < len(md.Params); i++ {
		lv += md.Params[i].Size()
	}
	return lv
}

func (md MethodDescriptor) String() string {
	return md.Descriptor()
}

// ParseType parses a single field descriptor. V is accepted so return
// types can go through the same path.
func ParseType(desc string) (Type, error) {
	t, n, err := parseType(desc, 0)
	if err != nil {
		return Type{}, err
	}
	if n != len(desc) {
		return Type{}, fmt.Errorf("%w: trailing data in %q", ErrMalformedDescriptor, desc)
	}
	return t, nil
}

func ParseMethodDescriptor(desc string) (MethodDescriptor, error) {
	if len(desc) == 0 || desc[0] != '(' {
		return MethodDescriptor{}, fmt.Errorf("%w: %q does not start with (", ErrMalformedDescriptor, desc)
	}

	md := MethodDescriptor{}
	i := 1

	for i < len(desc) && desc[i] != ')' {
		t, consumed, err := parseType(desc, i)
		if err != nil {
			return MethodDescriptor{}, err
		}
		if t.kind == KindVoid {
			return MethodDescriptor{}, fmt.Errorf("%w: void parameter in %q", ErrMalformedDescriptor, desc)
		}
		md.Params = append(md.Params, t)
		i += consumed
	}

	if i >= len(desc) {
		return MethodDescriptor{}, fmt.Errorf("%w: unterminated parameter list in %q", ErrMalformedDescriptor, desc)
	}
	i++

	ret, consumed, err := parseType(desc, i)
	if err != nil {
		return MethodDescriptor{}, err
	}
	if i+consumed != len(desc) {
		return MethodDescriptor{}, fmt.Errorf("%w: trailing data in %q", ErrMalformedDescriptor, desc)
	}
	md.Return = ret
	return md, nil
}

func parseType(desc string, start int) (Type, int, error) {
	i := start
	depth := 0
	for i < len(desc) && desc[i] == '[' {
		depth++
		i++
	}

	if i >= len(desc) {
		return Type{}, 0, fmt.Errorf("%w: unexpected end of %q", ErrMalformedDescriptor, desc)
	}

	var t Type
	switch desc[i] {
	case 'L':
		semicolon := strings.IndexByte(desc[i:], ';')
		if semicolon == -1 {
			return Type{}, 0, fmt.Errorf("%w: unterminated class name in %q", ErrMalformedDescriptor, desc)
		}
		t = Object(FromInternalName(desc[i+1 : i+semicolon]))
		i += semicolon + 1
	case 'V':
		if depth > 0 {
			return Type{}, 0, fmt.Errorf("%w: array of void in %q", ErrMalformedDescriptor, desc)
		}
		t = Void
		i++
	default:
		k, ok := baseKind(desc[i])
		if !ok {
			return Type{}, 0, fmt.Errorf("%w: unknown type %q in %q", ErrMalformedDescriptor, desc[i], desc)
		}
		t = Type{kind: k}
		i++
	}

	for ; depth > 0; depth-- {
		t = t.Array()
	}
	return t, i - start, nil
}

func baseKind(c byte) (Kind, bool) {
	for k := KindByte; k <= KindChar; k++ {
		if baseTypes[k].desc == c {
			return k, true
		}
	}
	return 0, false
}
