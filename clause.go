package sift

import (
	"fmt"
	"strings"
)

// Clause pairs a SQL fragment with the values bound to its positional
// placeholders. The invariant is structural: the Nth '?' in SQL corresponds
// exactly to Args[N]. Clauses are values; Args is owned by the clause and
// must not be mutated by holders of other clauses.
type Clause struct {
	SQL  string
	Args []any
}

// Empty reports whether the clause carries no SQL at all.
func (c Clause) Empty() bool {
	return c.SQL == ""
}

// clone returns a clause whose args are deep-copied, for capture into
// longer-lived structures such as recursive query definitions.
func (c Clause) clone() Clause {
	if c.Args == nil {
		return Clause{SQL: c.SQL}
	}
	args := make([]any, len(c.Args))
	copy(args, c.Args)
	return Clause{SQL: c.SQL, Args: args}
}

// ClauseBuilder accumulates a SQL fragment and its bound values, enforcing
// the placeholder/arg pairing on every write. A builder is cheap; construct
// a fresh one per branch instead of resetting, so captured clauses can never
// alias a reused scratch buffer.
//
// The zero value is ready to use.
type ClauseBuilder struct {
	sql  strings.Builder
	args []any
}

// Write appends sql and its bound values. The number of '?' placeholders in
// sql must equal len(args); a mismatch is a programming defect, never a
// consequence of runtime input, so it panics.
func (b *ClauseBuilder) Write(sql string, args ...any) {
	if n := strings.Count(sql, "?"); n != len(args) {
		panic(fmt.Sprintf("sift: clause placeholder mismatch: %d placeholders, %d args in %q", n, len(args), sql))
	}
	b.sql.WriteString(sql)
	b.args = append(b.args, args...)
}

// Append concatenates another clause. The resulting arg sequence is the
// ordered concatenation of both operands', matching textual order exactly.
func (b *ClauseBuilder) Append(c Clause) {
	b.Write(c.SQL, c.Args...)
}

// Clause returns the accumulated fragment. The returned args are a copy, so
// further writes to the builder cannot corrupt a clause already handed out.
func (b *ClauseBuilder) Clause() Clause {
	c := Clause{SQL: b.sql.String(), Args: b.args}
	return c.clone()
}

// placeholders renders n comma-separated '?' markers: "?, ?, ?".
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return "?" + strings.Repeat(", ?", n-1)
}
