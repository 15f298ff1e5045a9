package sift

// LegacyFilter builds the catalog predicate from the built-in org role and
// per-item ACL entries, for deployments where the fine-grained permission
// index is unavailable. Its default is fail-open: an item with no ACL entry
// anywhere in its chain (neither on itself nor on its containing folder)
// falls back to the org-wide default grant recorded under the sentinel
// org -1, addressed to built-in roles.
//
// Contrast with Filter, whose missing-index default is fail-closed. The two
// are never combined; the caller picks one per deployment mode.
type LegacyFilter struct {
	OrgRole RoleType
	Dialect Dialect
	UserID  int64
	OrgID   int64
	Level   PermissionLevel
}

// Predicate returns the boolean fragment and its bound values. Admins bypass
// filtering entirely: the fragment is empty and matches unconditionally.
func (f LegacyFilter) Predicate() (string, []any) {
	if f.OrgRole == RoleAdmin {
		return "", nil
	}

	okRoles := qualifyingRoles(f.OrgRole)
	falseStr := f.Dialect.BooleanStr(false)

	b := &ClauseBuilder{}
	b.Write(`(
	dashboard.id IN (
		SELECT DISTINCT DashboardId FROM (
			SELECT d.id AS DashboardId
				FROM dashboard AS d
				LEFT JOIN dashboard_acl AS da ON
					da.dashboard_id = d.id OR
					da.dashboard_id = d.folder_id
				WHERE
					d.org_id = ? AND
					da.permission >= ? AND
					(
						da.user_id = ? OR
						da.team_id IN (SELECT team_id FROM team_member AS tm WHERE tm.user_id = ?) OR
						da.role IN (`+placeholders(len(okRoles))+`)
					)`,
		append([]any{f.OrgID, f.Level, f.UserID, f.UserID}, okRoles...)...)

	// No explicit entry on the item or its folder: fall back to the default
	// grant rows recorded under the org -1 sentinel.
	b.Write(`
			UNION
			SELECT d.id AS DashboardId
				FROM dashboard AS d
				LEFT JOIN dashboard AS folder ON folder.id = d.folder_id
				LEFT JOIN dashboard_acl AS da ON
					(
						da.org_id = -1 AND (
							(folder.id IS NOT NULL AND folder.has_acl = `+falseStr+`) OR
							(folder.id IS NULL AND d.has_acl = `+falseStr+`)
						)
					)
				WHERE
					d.org_id = ? AND
					da.permission >= ? AND
					(
						da.user_id = ? OR
						da.role IN (`+placeholders(len(okRoles))+`)
					)
		) AS a
	)
)`,
		append([]any{f.OrgID, f.Level, f.UserID}, okRoles...)...)

	c := b.Clause()
	return c.SQL, c.Args
}
