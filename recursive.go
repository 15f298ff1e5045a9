package sift

import (
	"fmt"
	"strings"
)

// maxRecursiveQueries caps the recursive-query list: one closure for the
// folder branch and one for a dashboard's containing-folder check.
const maxRecursiveQueries = 2

// addRecursiveQuery registers a uniquely named transitive closure over the
// folder hierarchy, seeded by the given uid-membership subquery, and returns
// its name. The base case selects the seed folders; the recursive case walks
// parent_uid edges downward within the same org until no new rows appear.
// Edges are acyclic by hierarchy invariant, so UNION ALL terminates.
//
// The seed's args are deep-copied into the definition: a later compilation
// step mutating its own scratch buffer must not corrupt a captured closure.
func (f *Filter) addRecursiveQuery(seed Clause) string {
	name := fmt.Sprintf("RecQry%d", len(f.recQueries))
	def := seed.clone()
	f.recQueries = append(f.recQueries, Clause{
		SQL: fmt.Sprintf(`%s AS (
			SELECT uid, parent_uid, org_id FROM folder WHERE uid IN %s
			UNION ALL SELECT f.uid, f.parent_uid, f.org_id FROM folder f INNER JOIN %s r ON f.parent_uid = r.uid AND f.org_id = r.org_id
		)`, name, def.SQL, name),
		Args: def.Args,
	})
	return name
}

// Preamble returns the recursive-query preamble to prefix to the final
// statement, with all closure definitions comma-joined in creation order and
// their args concatenated in the same order. Empty when no closure was
// built. In the assembled statement the preamble's args precede the
// predicate's.
func (f *Filter) Preamble() (string, []any) {
	if len(f.recQueries) == 0 {
		return "", nil
	}

	var sb strings.Builder
	var args []any
	sb.WriteString("WITH RECURSIVE ")
	sb.WriteString(f.recQueries[0].SQL)
	args = append(args, f.recQueries[0].Args...)
	for _, r := range f.recQueries[1:] {
		sb.WriteRune(',')
		sb.WriteString(r.SQL)
		args = append(args, r.Args...)
	}
	return sb.String(), args
}
