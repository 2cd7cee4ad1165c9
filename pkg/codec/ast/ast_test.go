package ast

import (
	"errors"
	"testing"
)

func TestCodepoint_Ordinal(t *testing.T) {
	a := NewCodepoint('a')
	if a.Rune() != 'a' {
		t.Errorf("Rune() = %q, want %q", a.Rune(), 'a')
	}
	if a.Ord() != 0x61 {
		t.Errorf("Ord() = %d, want %d", a.Ord(), 0x61)
	}
}

func TestCodepoint_Ordering(t *testing.T) {
	a := NewCodepoint('a')
	z := NewCodepoint('z')

	if !a.Equal(NewCodepoint('a')) {
		t.Error("Equal() = false for identical scalar values")
	}
	if a.Equal(z) {
		t.Error("Equal() = true for distinct scalar values")
	}
	if !a.Less(z) {
		t.Error("Less('a', 'z') = false, want true")
	}
	if z.Less(a) {
		t.Error("Less('z', 'a') = true, want false")
	}
}

func TestNewCodepointNamed(t *testing.T) {
	cp, err := NewCodepointNamed("LATIN SMALL LETTER A")
	if err != nil {
		t.Fatalf("NewCodepointNamed() failed: %v", err)
	}
	if cp.Rune() != 'a' {
		t.Errorf("Rune() = %q, want %q", cp.Rune(), 'a')
	}

	// Lookup is case-insensitive.
	cp, err = NewCodepointNamed("latin small letter a")
	if err != nil {
		t.Fatalf("NewCodepointNamed() failed for lowercase name: %v", err)
	}
	if cp.Rune() != 'a' {
		t.Errorf("Rune() = %q, want %q", cp.Rune(), 'a')
	}

	if _, err := NewCodepointNamed("NO SUCH CHARACTER NAME"); err == nil {
		t.Error("NewCodepointNamed() succeeded for an unknown name")
	}
}

func TestNewBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		b, err := NewBuiltin(string(name))
		if err != nil {
			t.Fatalf("NewBuiltin(%q) failed: %v", name, err)
		}
		if b.Name() != name {
			t.Errorf("Name() = %q, want %q", b.Name(), name)
		}
	}

	if _, err := NewBuiltin("HEXX"); err == nil {
		t.Error("NewBuiltin(\"HEXX\") succeeded, want error")
	}
	if IsBuiltinName("hex") {
		t.Error("IsBuiltinName(\"hex\") = true; builtin names are case-sensitive")
	}
}

func TestIf_Children(t *testing.T) {
	cond := Eq(NewCandidate(), NewCodepoint('<'))
	then := NewConstant("&lt;")
	els := NewNop()
	branch := NewIf(cond, then, els)

	children := branch.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(children))
	}
	if children[0] != Node(cond) || children[1] != Node(then) || children[2] != Node(els) {
		t.Error("Children() not in condition, then, else order")
	}
}

func TestList_Children(t *testing.T) {
	hex, _ := NewBuiltin("HEX")
	list := NewList(NewConstant("&#x"), hex, NewConstant(";"))

	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
	children := list.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(children))
	}
	if children[1].Kind() != KindBuiltin {
		t.Errorf("Children()[1].Kind() = %q, want %q", children[1].Kind(), KindBuiltin)
	}

	empty := NewList()
	if empty.Len() != 0 {
		t.Errorf("empty list Len() = %d, want 0", empty.Len())
	}
}

func TestWalk_Preorder(t *testing.T) {
	// IF (α == '<') THEN "&lt;" ELSE nop
	tree := NewIf(
		Eq(NewCandidate(), NewCodepoint('<')),
		NewConstant("&lt;"),
		NewNop(),
	)

	var kinds []Kind
	err := Walk(tree, func(n Node) error {
		kinds = append(kinds, n.Kind())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	want := []Kind{KindIf, KindBinOp, KindCandidate, KindCodepoint, KindConstant, KindNop}
	if len(kinds) != len(want) {
		t.Fatalf("Walk() visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d: kind = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	tree := NewIf(NewBool(true), NewConstant("x"), NewNop())
	sentinel := errors.New("stop")

	visits := 0
	err := Walk(tree, func(n Node) error {
		visits++
		if n.Kind() == KindBool {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Walk() error = %v, want sentinel", err)
	}
	if visits != 2 {
		t.Errorf("Walk() visited %d nodes before stopping, want 2", visits)
	}
}

func TestBinOp_IsLogical(t *testing.T) {
	cmp := Eq(NewCandidate(), NewCodepoint('a'))
	if cmp.IsLogical() {
		t.Error("IsLogical() = true for a comparison")
	}

	logic := And(cmp, Or(NewBool(true), NewBool(false)))
	if !logic.IsLogical() {
		t.Error("IsLogical() = false for a conjunction")
	}
}
