package sift

import "strings"

// Wildcards is the set of scope patterns that each cover a whole class of
// resource instances. Containment is exact-match against the pattern set:
// a grant of "dashboards:uid:*" covers every dashboard, "dashboards:*"
// covers every dashboard-kind scope, and "*" covers everything.
type Wildcards []string

// Contains reports whether scope is one of the wildcard patterns.
func (w Wildcards) Contains(scope string) bool {
	for _, wildcard := range w {
		if scope == wildcard {
			return true
		}
	}
	return false
}

// WildcardsFromPrefix returns every wildcard that covers scopes under the
// given prefix, from the universal "*" down to the most specific.
// ex: WildcardsFromPrefix("dashboards:uid:") =>
// ["*", "dashboards:*", "dashboards:uid:*"]
func WildcardsFromPrefix(prefix string) Wildcards {
	ws := Wildcards{"*"}
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimSuffix(prefix, ":"), ":") {
		b.WriteString(part)
		b.WriteRune(':')
		ws = append(ws, b.String()+"*")
	}
	return ws
}

// actionsToCheck returns, in input order, the actions whose grants are not
// covered by any of the supplied wildcards and therefore need an explicit
// per-instance scope check. An empty result for a non-empty input means the
// whole action set is unconditionally satisfied.
func actionsToCheck(actions []string, grants Permissions, wildcards ...Wildcards) []any {
	toCheck := make([]any, 0, len(actions))

	for _, a := range actions {
		var hasWildcard bool

	outer:
		for _, scope := range grants[a] {
			for _, w := range wildcards {
				if w.Contains(scope) {
					hasWildcard = true
					break outer
				}
			}
		}

		if !hasWildcard {
			toCheck = append(toCheck, a)
		}
	}
	return toCheck
}
