package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

type checkPhase int

const (
	phaseStart checkPhase = iota
	phaseHeader
	phaseHeaderMetadata
	phaseHeaderSkipped
	phaseContent
	phaseContentSkipped
	phaseEnded
)

var checkPhaseNames = [...]string{
	phaseStart:          "start of pass",
	phaseHeader:         "header",
	phaseHeaderMetadata: "header metadata",
	phaseHeaderSkipped:  "skipped header",
	phaseContent:        "content",
	phaseContentSkipped: "skipped content",
	phaseEnded:          "finished visitation",
}

func (p checkPhase) String() string {
	return checkPhaseNames[p]
}

// Checker sits in front of a visitor and enforces the protocol on the
// producer: call order, skip returns, namespace indices and the
// requirements declared by the wrapped visitor's flags. Violations are
// returned as errors instead of being passed on.
type Checker struct {
	Forwarder

	flags   Flags
	phase   checkPhase
	nsCount int

	pending    ElementKind
	hasPending bool
	dstDescs   []bool
	open       []ElementKind

	className string
	member    elementKey
	seen      map[elementKey]struct{}
}

// elementKey identifies an element within one pass. Owner and member
// fields are kept apart so names containing separators cannot collide.
type elementKey struct {
	kind                   ElementKind
	class, name, desc      string
	memberName, memberDesc string
	a, b, c                int
}

func (k elementKey) String() string {
	var sb strings.Builder
	sb.WriteString(k.kind.String())
	sb.WriteByte(' ')
	sb.WriteString(k.class)
	switch k.kind {
	case Field:
		sb.WriteString("." + k.name + ":" + k.desc)
	case Method:
		sb.WriteString("." + k.name + k.desc)
	case MethodArg:
		sb.WriteString("." + k.memberName + k.memberDesc + " arg " + strconv.Itoa(k.a) + "/" + strconv.Itoa(k.b))
	case MethodVar:
		sb.WriteString("." + k.memberName + k.memberDesc + " var " +
			strconv.Itoa(k.a) + "/" + strconv.Itoa(k.b) + "/" + strconv.Itoa(k.c))
	}
	return sb.String()
}

// NewChecker wraps next. The wrapped visitor is not reset; call Reset
// before reusing a visitor that saw an earlier visitation.
func NewChecker(next Visitor) *Checker {
	c := &Checker{Forwarder: Forwarder{Next: next}}
	c.flags = next.Flags()
	c.phase = phaseStart
	c.startPass()
	return c
}

func (c *Checker) Reset() {
	c.Next.Reset()
	c.flags = c.Next.Flags()
	c.phase = phaseStart
	c.startPass()
}

func (c *Checker) startPass() {
	c.nsCount = -1
	c.hasPending = false
	c.open = c.open[:0]
	c.className = ""
	c.member = elementKey{}
	c.seen = make(map[elementKey]struct{})
}

func (c *Checker) violation(call string) error {
	if c.hasPending {
		return fmt.Errorf("%w: %s while %s awaits VisitElementContent", ErrProtocol, call, c.pending)
	}
	return fmt.Errorf("%w: %s during %s", ErrProtocol, call, c.phase)
}

func (c *Checker) VisitHeader() (bool, error) {
	if c.phase != phaseStart {
		return false, c.violation("VisitHeader")
	}
	ok, err := c.Next.VisitHeader()
	if err != nil {
		return false, err
	}
	if ok {
		c.phase = phaseHeader
	} else {
		c.phase = phaseHeaderSkipped
	}
	return ok, nil
}

func (c *Checker) VisitNamespaces(src string, dst []string) error {
	if c.phase != phaseStart && c.phase != phaseHeader {
		return c.violation("VisitNamespaces")
	}
	c.nsCount = len(dst)
	c.phase = phaseHeaderMetadata
	return c.Next.VisitNamespaces(src, dst)
}

func (c *Checker) VisitMetadata(key, value string) error {
	switch {
	case c.phase == phaseHeaderMetadata:
	case c.phase == phaseContent && !c.hasPending:
		if c.flags.Has(NeedsHeaderMetadata) {
			return fmt.Errorf("metadata %q: %w", key, ErrContentMetadata)
		}
		// Metadata closes the preceding class.
		c.open = c.open[:0]
	default:
		return c.violation("VisitMetadata")
	}
	return c.Next.VisitMetadata(key, value)
}

func (c *Checker) VisitContent() (bool, error) {
	if c.phase != phaseHeaderMetadata && c.phase != phaseHeaderSkipped {
		return false, c.violation("VisitContent")
	}
	ok, err := c.Next.VisitContent()
	if err != nil {
		return false, err
	}
	if ok {
		c.phase = phaseContent
	} else {
		c.phase = phaseContentSkipped
	}
	return ok, nil
}

// begin validates the start of an element of the given kind and trims
// the open element stack to its parent.
func (c *Checker) begin(kind ElementKind, key elementKey) error {
	switch c.phase {
	case phaseHeaderMetadata, phaseHeaderSkipped:
		if kind != Class {
			return c.violation("Visit" + kind.String())
		}
		c.phase = phaseContent
	case phaseContent:
	default:
		return c.violation("Visit" + kind.String())
	}
	if c.hasPending {
		return c.violation("Visit" + kind.String())
	}

	switch kind {
	case Field, Method:
		if len(c.open) < 1 {
			return fmt.Errorf("%w: Visit%s outside a visited class", ErrProtocol, kind)
		}
	case MethodArg, MethodVar:
		if len(c.open) < 2 || c.open[1] != Method {
			return fmt.Errorf("%w: Visit%s outside a visited method", ErrProtocol, kind)
		}
	}
	c.open = c.open[:kind.Level()]

	if c.flags.Has(NeedsUniqueness) {
		if _, dup := c.seen[key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateElement, key)
		}
		c.seen[key] = struct{}{}
	}
	return nil
}

func (c *Checker) started(kind ElementKind, ok bool) {
	if !ok {
		return
	}
	c.pending = kind
	c.hasPending = true
	c.dstDescs = c.dstDescs[:0]
}

func (c *Checker) VisitClass(srcName string) (bool, error) {
	if err := c.begin(Class, elementKey{kind: Class, class: srcName}); err != nil {
		return false, err
	}
	c.className = srcName
	ok, err := c.Next.VisitClass(srcName)
	if err != nil {
		return false, err
	}
	c.started(Class, ok)
	return ok, nil
}

func (c *Checker) VisitField(srcName, srcDesc string) (bool, error) {
	key := elementKey{kind: Field, class: c.className, name: srcName, desc: srcDesc}
	if err := c.begin(Field, key); err != nil {
		return false, err
	}
	if srcDesc == "" && c.flags.Has(NeedsSrcFieldDesc) {
		return false, fmt.Errorf("field %s.%s: %w", c.className, srcName, ErrMissingSrcDesc)
	}
	c.member = key
	ok, err := c.Next.VisitField(srcName, srcDesc)
	if err != nil {
		return false, err
	}
	c.started(Field, ok)
	return ok, nil
}

func (c *Checker) VisitMethod(srcName, srcDesc string) (bool, error) {
	key := elementKey{kind: Method, class: c.className, name: srcName, desc: srcDesc}
	if err := c.begin(Method, key); err != nil {
		return false, err
	}
	if srcDesc == "" && c.flags.Has(NeedsSrcMethodDesc) {
		return false, fmt.Errorf("method %s.%s: %w", c.className, srcName, ErrMissingSrcDesc)
	}
	c.member = key
	ok, err := c.Next.VisitMethod(srcName, srcDesc)
	if err != nil {
		return false, err
	}
	c.started(Method, ok)
	return ok, nil
}

func (c *Checker) childKey(kind ElementKind, a, b, n int) elementKey {
	return elementKey{
		kind:       kind,
		class:      c.member.class,
		memberName: c.member.name,
		memberDesc: c.member.desc,
		a:          a,
		b:          b,
		c:          n,
	}
}

func (c *Checker) VisitMethodArg(argPosition, lvIndex int, srcName string) (bool, error) {
	key := c.childKey(MethodArg, argPosition, lvIndex, 0)
	if err := c.begin(MethodArg, key); err != nil {
		return false, err
	}
	ok, err := c.Next.VisitMethodArg(argPosition, lvIndex, srcName)
	if err != nil {
		return false, err
	}
	c.started(MethodArg, ok)
	return ok, nil
}

func (c *Checker) VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx int, srcName string) (bool, error) {
	key := c.childKey(MethodVar, lvtRowIndex, lvIndex, startOpIdx)
	if err := c.begin(MethodVar, key); err != nil {
		return false, err
	}
	ok, err := c.Next.VisitMethodVar(lvtRowIndex, lvIndex, startOpIdx, srcName)
	if err != nil {
		return false, err
	}
	c.started(MethodVar, ok)
	return ok, nil
}

func (c *Checker) checkDst(call string, kind ElementKind, namespace int) error {
	if !c.hasPending || c.pending != kind {
		return fmt.Errorf("%w: %s for %s outside its element", ErrProtocol, call, kind)
	}
	if namespace < 0 || (c.nsCount >= 0 && namespace >= c.nsCount) {
		return fmt.Errorf("%w: %s %s namespace %d", ErrNamespaceIndex, call, kind, namespace)
	}
	return nil
}

func (c *Checker) VisitDstName(kind ElementKind, namespace int, name string) error {
	if err := c.checkDst("VisitDstName", kind, namespace); err != nil {
		return err
	}
	return c.Next.VisitDstName(kind, namespace, name)
}

func (c *Checker) VisitDstDesc(kind ElementKind, namespace int, desc string) error {
	if err := c.checkDst("VisitDstDesc", kind, namespace); err != nil {
		return err
	}
	if kind != Field && kind != Method {
		return fmt.Errorf("%w: VisitDstDesc for %s", ErrProtocol, kind)
	}
	for len(c.dstDescs) <= namespace {
		c.dstDescs = append(c.dstDescs, false)
	}
	c.dstDescs[namespace] = true
	return c.Next.VisitDstDesc(kind, namespace, desc)
}

func (c *Checker) missingDstDesc() bool {
	n := c.nsCount
	if n < 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if i >= len(c.dstDescs) || !c.dstDescs[i] {
			return true
		}
	}
	return false
}

func (c *Checker) VisitElementContent(kind ElementKind) (bool, error) {
	if !c.hasPending || c.pending != kind {
		return false, fmt.Errorf("%w: VisitElementContent for %s outside its element", ErrProtocol, kind)
	}
	if (kind == Field && c.flags.Has(NeedsDstFieldDesc)) || (kind == Method && c.flags.Has(NeedsDstMethodDesc)) {
		if c.missingDstDesc() {
			return false, fmt.Errorf("%s: %w", c.member, ErrMissingDstDesc)
		}
	}
	ok, err := c.Next.VisitElementContent(kind)
	if err != nil {
		return false, err
	}
	c.hasPending = false
	if ok {
		c.open = append(c.open, kind)
	}
	return ok, nil
}

func (c *Checker) VisitComment(kind ElementKind, comment string) error {
	level := kind.Level()
	if c.hasPending || len(c.open) <= level || c.open[level] != kind {
		return fmt.Errorf("%w: VisitComment for %s outside its content", ErrProtocol, kind)
	}
	return c.Next.VisitComment(kind, comment)
}

func (c *Checker) VisitEnd() (bool, error) {
	switch c.phase {
	case phaseHeaderMetadata, phaseHeaderSkipped, phaseContent, phaseContentSkipped:
	default:
		return false, c.violation("VisitEnd")
	}
	if c.hasPending {
		return false, c.violation("VisitEnd")
	}
	done, err := c.Next.VisitEnd()
	if err != nil {
		return false, err
	}
	if done {
		c.phase = phaseEnded
		return true, nil
	}
	if !c.flags.Has(NeedsMultiplePasses) {
		return false, ErrUnexpectedRestart
	}
	c.phase = phaseStart
	c.startPass()
	return false, nil
}
