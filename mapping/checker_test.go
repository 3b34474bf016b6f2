package mapping

import (
	"errors"
	"slices"
	"testing"
)

// startContent drives c up to the first class.
func startContent(t *testing.T, c *Checker, dst ...string) {
	t.Helper()
	if _, err := c.VisitHeader(); err != nil {
		t.Fatalf("VisitHeader() error = %v", err)
	}
	if err := c.VisitNamespaces("src", dst); err != nil {
		t.Fatalf("VisitNamespaces() error = %v", err)
	}
	if _, err := c.VisitContent(); err != nil {
		t.Fatalf("VisitContent() error = %v", err)
	}
}

func TestCheckerSkippedClassRejectsItsSubtree(t *testing.T) {
	r := newRecorder(NoFlags, "class a")
	c := NewChecker(r)
	startContent(t, c, "dst")

	ok, err := c.VisitClass("a")
	if err != nil || ok {
		t.Fatalf("VisitClass() = %v, %v, want false, nil", ok, err)
	}

	if err := c.VisitDstName(Class, 0, "b"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitDstName() error = %v, want ErrProtocol", err)
	}
	if _, err := c.VisitElementContent(Class); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitElementContent() error = %v, want ErrProtocol", err)
	}
	if _, err := c.VisitField("f", "I"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitField() error = %v, want ErrProtocol", err)
	}
	if err := c.VisitComment(Class, "x"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitComment() error = %v, want ErrProtocol", err)
	}

	if ok, err := c.VisitClass("c"); err != nil || !ok {
		t.Errorf("VisitClass(c) = %v, %v, want true, nil", ok, err)
	}
	if _, err := c.VisitElementContent(Class); err != nil {
		t.Errorf("VisitElementContent() error = %v", err)
	}
	if done, err := c.VisitEnd(); err != nil || !done {
		t.Errorf("VisitEnd() = %v, %v, want true, nil", done, err)
	}

	for _, call := range r.calls {
		if call == "dst Class 0 b" || call == "field f I" || call == "comment Class x" {
			t.Errorf("skipped class leaked %q to the visitor", call)
		}
	}
}

func TestCheckerNamespaceIndex(t *testing.T) {
	c := NewChecker(newRecorder(NoFlags))
	startContent(t, c, "one", "two")
	_, _ = c.VisitClass("a")

	if err := c.VisitDstName(Class, 1, "ok"); err != nil {
		t.Errorf("VisitDstName(1) error = %v", err)
	}
	for _, ns := range []int{-1, 2} {
		if err := c.VisitDstName(Class, ns, "bad"); !errors.Is(err, ErrNamespaceIndex) {
			t.Errorf("VisitDstName(%d) error = %v, want ErrNamespaceIndex", ns, err)
		}
	}
	if err := c.VisitDstName(Field, 0, "wrong kind"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitDstName(Field) error = %v, want ErrProtocol", err)
	}
	if err := c.VisitDstDesc(Class, 0, "I"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitDstDesc(Class) error = %v, want ErrProtocol", err)
	}
}

func TestCheckerUniqueness(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  error
	}{
		{"required", NewFlags(NeedsUniqueness), ErrDuplicateElement},
		{"not required", NoFlags, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(newRecorder(tt.flags))
			startContent(t, c)
			_, _ = c.VisitClass("a")
			_, _ = c.VisitElementContent(Class)
			_, _ = c.VisitField("f", "I")
			_, _ = c.VisitElementContent(Field)
			_, _ = c.VisitField("f", "J")
			_, _ = c.VisitElementContent(Field)

			_, err := c.VisitField("f", "I")
			if !errors.Is(err, tt.want) {
				t.Errorf("duplicate VisitField() error = %v, want %v", err, tt.want)
			}
			if err == nil {
				_, _ = c.VisitElementContent(Field)
			}
			if _, err := c.VisitClass("a"); !errors.Is(err, tt.want) {
				t.Errorf("duplicate VisitClass() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCheckerUniquenessSeparatesKinds(t *testing.T) {
	c := NewChecker(newRecorder(NewFlags(NeedsUniqueness)))
	startContent(t, c)
	_, _ = c.VisitClass("a")
	_, _ = c.VisitElementContent(Class)
	_, _ = c.VisitField("f", "I")
	_, _ = c.VisitElementContent(Field)
	_, _ = c.VisitMethod("m", "()V")
	_, _ = c.VisitElementContent(Method)
	_, _ = c.VisitMethodArg(0, 1, "x")
	_, _ = c.VisitElementContent(MethodArg)

	for _, name := range []string{"a.f:I", "a.m()V", "a.m()V arg 0/1"} {
		if _, err := c.VisitClass(name); err != nil {
			t.Errorf("VisitClass(%q) error = %v", name, err)
		}
		if _, err := c.VisitElementContent(Class); err != nil {
			t.Errorf("VisitElementContent() error = %v", err)
		}
	}

	_, _ = c.VisitClass("b")
	_, _ = c.VisitElementContent(Class)
	if _, err := c.VisitField("f", "I"); err != nil {
		t.Errorf("VisitField() in another class error = %v", err)
	}
}

func TestCheckerContentMetadata(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  error
	}{
		{"header metadata required", NewFlags(NeedsHeaderMetadata), ErrContentMetadata},
		{"anywhere", NoFlags, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(tt.flags)
			c := NewChecker(r)
			startContent(t, c, "dst")
			if err := c.VisitMetadata("late", "v"); !errors.Is(err, tt.want) {
				t.Errorf("VisitMetadata() error = %v, want %v", err, tt.want)
			}
			if tt.want != nil && slices.Contains(r.calls, "metadata late=v") {
				t.Error("rejected metadata reached the visitor")
			}
		})
	}
}

func TestCheckerMetadataClosesClass(t *testing.T) {
	c := NewChecker(newRecorder(NoFlags))
	startContent(t, c)
	_, _ = c.VisitClass("a")
	_, _ = c.VisitElementContent(Class)
	if err := c.VisitMetadata("k", "v"); err != nil {
		t.Fatalf("VisitMetadata() error = %v", err)
	}

	if _, err := c.VisitField("f", "I"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitField() after metadata error = %v, want ErrProtocol", err)
	}
	if err := c.VisitComment(Class, "late"); !errors.Is(err, ErrProtocol) {
		t.Errorf("VisitComment() after metadata error = %v, want ErrProtocol", err)
	}
}

func TestNewCheckerLeavesVisitorState(t *testing.T) {
	r := newRecorder(NoFlags)
	c := NewChecker(r)
	if len(r.calls) != 0 {
		t.Errorf("NewChecker() made calls %v", r.calls)
	}

	tree := testTree()
	NewChecker(tree)
	if len(tree.Classes) != 2 {
		t.Errorf("NewChecker() changed the tree: %d classes", len(tree.Classes))
	}

	c.Reset()
	if !slices.Equal(r.calls, []string{"reset"}) {
		t.Errorf("Reset() calls = %v", r.calls)
	}
}

func TestCheckerSrcDescRequirements(t *testing.T) {
	r := newRecorder(NewFlags(NeedsSrcFieldDesc, NeedsSrcMethodDesc))
	c := NewChecker(r)
	startContent(t, c)
	_, _ = c.VisitClass("a")
	_, _ = c.VisitElementContent(Class)

	if _, err := c.VisitField("f", ""); !errors.Is(err, ErrMissingSrcDesc) {
		t.Errorf("VisitField() error = %v, want ErrMissingSrcDesc", err)
	}
	if _, err := c.VisitMethod("m", ""); !errors.Is(err, ErrMissingSrcDesc) {
		t.Errorf("VisitMethod() error = %v, want ErrMissingSrcDesc", err)
	}
	for _, call := range r.calls {
		if call == "field f " || call == "method m " {
			t.Errorf("visitor received %q", call)
		}
	}
}

func TestCheckerDstDescRequirements(t *testing.T) {
	c := NewChecker(newRecorder(NewFlags(NeedsDstMethodDesc)))
	startContent(t, c, "x", "y")
	_, _ = c.VisitClass("a")
	_, _ = c.VisitElementContent(Class)

	_, _ = c.VisitMethod("m", "()V")
	_ = c.VisitDstDesc(Method, 0, "()V")
	if _, err := c.VisitElementContent(Method); !errors.Is(err, ErrMissingDstDesc) {
		t.Errorf("VisitElementContent() error = %v, want ErrMissingDstDesc", err)
	}

	_ = c.VisitDstDesc(Method, 1, "()V")
	if _, err := c.VisitElementContent(Method); err != nil {
		t.Errorf("VisitElementContent() error = %v", err)
	}
}

func TestCheckerOrdering(t *testing.T) {
	t.Run("class before namespaces", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		if _, err := c.VisitClass("a"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitClass() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("member without class", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		if _, err := c.VisitMethod("m", "()V"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitMethod() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("arg under field", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		_, _ = c.VisitClass("a")
		_, _ = c.VisitElementContent(Class)
		_, _ = c.VisitField("f", "I")
		_, _ = c.VisitElementContent(Field)
		if _, err := c.VisitMethodArg(0, 0, "p"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitMethodArg() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("missing checkpoint", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		_, _ = c.VisitClass("a")
		if _, err := c.VisitClass("b"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitClass() error = %v, want ErrProtocol", err)
		}
		if _, err := c.VisitEnd(); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitEnd() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("header twice", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		if _, err := c.VisitHeader(); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitHeader() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("metadata inside element", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		_, _ = c.VisitClass("a")
		if err := c.VisitMetadata("k", "v"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitMetadata() error = %v, want ErrProtocol", err)
		}
	})

	t.Run("visit after end", func(t *testing.T) {
		c := NewChecker(newRecorder(NoFlags))
		startContent(t, c)
		_, _ = c.VisitEnd()
		if _, err := c.VisitClass("a"); !errors.Is(err, ErrProtocol) {
			t.Errorf("VisitClass() error = %v, want ErrProtocol", err)
		}
		c.Reset()
		startContent(t, c)
	})
}

func TestCheckerRestart(t *testing.T) {
	t.Run("without flag", func(t *testing.T) {
		r := newRecorder(NoFlags)
		r.ends = []bool{false}
		c := NewChecker(r)
		startContent(t, c)
		if _, err := c.VisitEnd(); !errors.Is(err, ErrUnexpectedRestart) {
			t.Errorf("VisitEnd() error = %v, want ErrUnexpectedRestart", err)
		}
	})

	t.Run("with flag", func(t *testing.T) {
		r := newRecorder(NewFlags(NeedsMultiplePasses, NeedsUniqueness))
		r.ends = []bool{false}
		c := NewChecker(r)
		startContent(t, c)
		_, _ = c.VisitClass("a")
		_, _ = c.VisitElementContent(Class)
		if done, err := c.VisitEnd(); err != nil || done {
			t.Fatalf("VisitEnd() = %v, %v, want false, nil", done, err)
		}

		startContent(t, c)
		if _, err := c.VisitClass("a"); err != nil {
			t.Errorf("VisitClass() in second pass error = %v", err)
		}
	})
}
