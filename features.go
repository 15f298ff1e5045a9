package sift

// FlagNestedFolders enables the nested-folder hierarchy: folder grants
// cascade to descendants through a recursive closure instead of a flat
// scope-membership check.
const FlagNestedFolders = "nestedFolders"

// FeatureToggles reports whether a capability flag is on. The compiler reads
// each flag it cares about exactly once per compilation, so a toggle flipping
// mid-request cannot leave the two folder-membership call sites disagreeing.
type FeatureToggles interface {
	IsEnabled(flag string) bool
}

// StaticFlags is a FeatureToggles backed by a fixed set.
type StaticFlags map[string]bool

func (s StaticFlags) IsEnabled(flag string) bool { return s[flag] }
