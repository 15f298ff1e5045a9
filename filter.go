package sift

import "fmt"

// denyAll is the fixed always-false predicate emitted when the identity has
// no permission-index entry for its org.
const denyAll = "(1 = 0)"

// branchActions lists the action requirements each query type derives.
// Edit-level requests add the edit set on top of the base set.
var branchActions = map[QueryType]struct {
	dashboard     []string
	dashboardEdit []string
	folder        []string
	folderEdit    []string
}{
	TypeDashboard: {
		dashboard:     []string{ActionDashboardsRead},
		dashboardEdit: []string{ActionDashboardsWrite},
	},
	TypeFolder: {
		folder:     []string{ActionFoldersRead},
		folderEdit: []string{ActionDashboardsCreate},
	},
	TypeAlertFolder: {
		folder:     []string{ActionFoldersRead, ActionAlertRulesRead},
		folderEdit: []string{ActionAlertRulesCreate},
	},
	TypeMixed: {
		dashboard:     []string{ActionDashboardsRead},
		dashboardEdit: []string{ActionDashboardsWrite},
		folder:        []string{ActionFoldersRead},
		folderEdit:    []string{ActionDashboardsCreate},
	},
}

// requiredActions derives the per-branch action sets for a query type and
// permission level. The returned slices are fresh copies.
func requiredActions(kind QueryType, level PermissionLevel) (dashboard, folder []string) {
	spec := branchActions[kind]
	dashboard = append(dashboard, spec.dashboard...)
	folder = append(folder, spec.folder...)
	if level > LevelView {
		dashboard = append(dashboard, spec.dashboardEdit...)
		folder = append(folder, spec.folderEdit...)
	}
	return dashboard, folder
}

// membershipStrategy decides how a folder scope-membership subquery is
// applied: inlined flat, or used as the seed of a named recursive closure
// over the folder hierarchy. The strategy is chosen once per compilation and
// injected into both the folder branch and the dashboard folder-inheritance
// branch, so the two call sites cannot diverge.
type membershipStrategy interface {
	folderMembership(seed Clause) Clause
}

// flatMembership inlines the seed subquery directly.
type flatMembership struct{}

func (flatMembership) folderMembership(seed Clause) Clause { return seed }

// closureMembership registers the seed as a recursive closure definition on
// the filter and yields a selection over the closure's result set. The
// returned clause carries no args; the seed's args live in the definition.
type closureMembership struct{ f *Filter }

func (m closureMembership) folderMembership(seed Clause) Clause {
	name := m.f.addRecursiveQuery(seed)
	return Clause{SQL: fmt.Sprintf("(SELECT uid FROM %s)", name)}
}

// Filter compiles the fine-grained permission predicate for one catalog
// listing. Construct a fresh Filter per request with New; instances own
// their recursive-query list exclusively and are not safe to share.
type Filter struct {
	ident      *Identity
	roles      RoleResolver
	membership membershipStrategy

	dashboardActions []string
	folderActions    []string

	where      Clause
	recQueries []Clause
}

// New compiles a predicate for the identity at the given permission level
// and query type. The feature flag for nested folders is read once, here.
//
// The resolver expands org/user/team/role membership into a role-id
// selection fragment; StandardRoleResolver fits the standard assignment
// tables. Compilation is pure in-memory computation; nothing here touches
// the database.
func New(ident *Identity, level PermissionLevel, kind QueryType, roles RoleResolver, features FeatureToggles) *Filter {
	dashboardActions, folderActions := requiredActions(kind, level)

	f := &Filter{
		ident:            ident,
		roles:            roles,
		dashboardActions: dashboardActions,
		folderActions:    folderActions,
		recQueries:       make([]Clause, 0, maxRecursiveQueries),
	}

	if features != nil && features.IsEnabled(FlagNestedFolders) {
		f.membership = closureMembership{f}
	} else {
		f.membership = flatMembership{}
	}

	f.build()
	return f
}

// Predicate returns the boolean fragment filtering catalog rows to those the
// identity may see, with its positionally bound values.
func (f *Filter) Predicate() (string, []any) {
	return f.where.SQL, f.where.Args
}

func (f *Filter) build() {
	if f.ident == nil || f.ident.Permissions == nil || f.ident.Permissions[f.ident.OrgID] == nil {
		f.where = Clause{SQL: denyAll}
		return
	}
	grants := f.ident.Permissions[f.ident.OrgID]
	dashWildcards := WildcardsFromPrefix(ScopeDashboardsPrefix)
	folderWildcards := WildcardsFromPrefix(ScopeFoldersPrefix)

	rf := f.roles.RolesFilter(f.ident)
	rolesFilter := Clause{
		SQL:  " AND role_id IN (SELECT id FROM role " + rf.SQL + ") ",
		Args: rf.Args,
	}

	out := &ClauseBuilder{}
	out.Write("(")

	if len(f.dashboardActions) > 0 {
		// A dashboard action can be granted on the dashboard itself or on a
		// folder scope, so folder wildcards short-circuit this branch too.
		toCheck := actionsToCheck(f.dashboardActions, grants, dashWildcards, folderWildcards)

		if len(toCheck) > 0 {
			out.Write("(dashboard.uid IN ")
			out.Append(f.scopeMembership(ScopeDashboardsPrefix, rolesFilter, toCheck))
			out.Write(" AND NOT dashboard.is_folder)")

			// Second disjunct: permission inherited from the containing folder.
			inherited := f.membership.folderMembership(f.scopeMembership(ScopeFoldersPrefix, rolesFilter, toCheck))
			out.Write(" OR (dashboard.folder_id IN (SELECT id FROM dashboard AS d WHERE d.uid IN ")
			out.Append(inherited)
			out.Write(") AND NOT dashboard.is_folder)")
		} else {
			out.Write("NOT dashboard.is_folder")
		}
	}

	if len(f.folderActions) > 0 {
		if len(f.dashboardActions) > 0 {
			out.Write(" OR ")
		}

		toCheck := actionsToCheck(f.folderActions, grants, folderWildcards)
		if len(toCheck) > 0 {
			member := f.membership.folderMembership(f.scopeMembership(ScopeFoldersPrefix, rolesFilter, toCheck))
			out.Write("(dashboard.uid IN ")
			out.Append(member)
			out.Write(" AND dashboard.is_folder)")
		} else {
			out.Write("dashboard.is_folder")
		}
	}

	out.Write(")")
	f.where = out.Clause()
}

// scopeMembership builds the subquery selecting the identifiers granted,
// through the identity's applicable roles, for every action in toCheck under
// the given scope prefix. One action needs a single equality; several need a
// grouped count so that a grant covering only some of the actions does not
// qualify.
func (f *Filter) scopeMembership(prefix string, rolesFilter Clause, toCheck []any) Clause {
	b := &ClauseBuilder{}
	b.Write(fmt.Sprintf("(SELECT substr(scope, %d) FROM permission WHERE scope LIKE '%s%%'", len(prefix)+1, prefix))
	b.Append(rolesFilter)

	if len(toCheck) == 1 {
		b.Write(" AND action = ?", toCheck[0])
	} else {
		args := make([]any, 0, len(toCheck)+1)
		args = append(args, toCheck...)
		args = append(args, len(toCheck))
		b.Write(" AND action IN ("+placeholders(len(toCheck))+") GROUP BY role_id, scope HAVING COUNT(action) = ?", args...)
	}

	b.Write(")")
	return b.Clause()
}
