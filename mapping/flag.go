package mapping

import "strings"

//go:generate go tool stringer -type=Flag -output=flag_string.go

// Flag is a requirement a visitor places on whoever drives it.
type Flag int

const (
	// NeedsMultiplePasses allows VisitEnd to request another pass.
	NeedsMultiplePasses Flag = iota
	// NeedsHeaderMetadata asks for metadata to be supplied in the header.
	NeedsHeaderMetadata
	// NeedsUniqueness forbids visiting the same element twice within a
	// pass: all members of a class follow its single VisitClass call.
	NeedsUniqueness
	NeedsSrcFieldDesc
	NeedsSrcMethodDesc
	NeedsDstFieldDesc
	NeedsDstMethodDesc

	numFlags
)

// Flags is a set of Flag values.
type Flags uint16

const NoFlags Flags = 0

func NewFlags(fs ...Flag) Flags {
	return NoFlags.With(fs...)
}

func (s Flags) Has(f Flag) bool {
	return s&(1<<f) != 0
}

func (s Flags) With(fs ...Flag) Flags {
	for _, f := range fs {
		s |= 1 << f
	}
	return s
}

func (s Flags) Union(o Flags) Flags {
	return s | o
}

func (s Flags) Slice() []Flag {
	var out []Flag
	for f := Flag(0); f < numFlags; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s Flags) String() string {
	var names []string
	for _, f := range s.Slice() {
		names = append(names, f.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
