package sift_test

import (
	"strings"
	"testing"

	"github.com/faxm0dem/sift"
)

func TestClauseBuilder_PairsArgsWithPlaceholders(t *testing.T) {
	b := &sift.ClauseBuilder{}
	b.Write("a = ? AND b = ?", 1, 2)
	b.Write(" AND c = ?", 3)

	c := b.Clause()
	if c.SQL != "a = ? AND b = ? AND c = ?" {
		t.Errorf("unexpected SQL: %q", c.SQL)
	}
	if len(c.Args) != 3 || c.Args[0] != 1 || c.Args[1] != 2 || c.Args[2] != 3 {
		t.Errorf("args out of order: %v", c.Args)
	}
}

func TestClauseBuilder_AppendConcatenatesArgsInTextualOrder(t *testing.T) {
	left := &sift.ClauseBuilder{}
	left.Write("x IN (?, ?)", "a", "b")

	b := &sift.ClauseBuilder{}
	b.Write("? OR ", "first")
	b.Append(left.Clause())

	c := b.Clause()
	if got := strings.Count(c.SQL, "?"); got != len(c.Args) {
		t.Fatalf("placeholder/arg mismatch: %d placeholders, %d args", got, len(c.Args))
	}
	if c.Args[0] != "first" || c.Args[1] != "a" || c.Args[2] != "b" {
		t.Errorf("args out of order: %v", c.Args)
	}
}

func TestClauseBuilder_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for placeholder/arg mismatch")
		}
	}()
	b := &sift.ClauseBuilder{}
	b.Write("a = ?") // one placeholder, zero args
}

func TestClauseBuilder_ClauseIsDetachedFromBuilder(t *testing.T) {
	b := &sift.ClauseBuilder{}
	b.Write("a = ?", 1)
	captured := b.Clause()

	// Later writes to the builder must not leak into the captured clause.
	b.Write(" AND b = ?", 2)
	if len(captured.Args) != 1 {
		t.Errorf("captured clause grew: %v", captured.Args)
	}

	// Mutating the captured args must not corrupt the builder either.
	captured.Args[0] = 99
	c := b.Clause()
	if c.Args[0] != 1 {
		t.Errorf("builder args aliased a captured clause: %v", c.Args)
	}
}

func TestClause_Empty(t *testing.T) {
	if !(sift.Clause{}).Empty() {
		t.Error("zero clause should be empty")
	}
	if (sift.Clause{SQL: "1 = 1"}).Empty() {
		t.Error("non-empty SQL should not be empty")
	}
}
