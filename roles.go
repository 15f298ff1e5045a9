package sift

// RoleType is a built-in organization role.
type RoleType string

const (
	RoleViewer RoleType = "Viewer"
	RoleEditor RoleType = "Editor"
	RoleAdmin  RoleType = "Admin"
)

// serverAdminRole is the built-in role name recorded for server
// administrators, on top of whatever org role they hold.
const serverAdminRole = "Server Admin"

// qualifyingRoles returns the org roles whose ACL entries the given role may
// use: an editor also matches entries addressed to viewers. The permission
// level itself is enforced separately on the entry.
func qualifyingRoles(role RoleType) []any {
	ok := []any{role}
	if role == RoleEditor {
		ok = append(ok, RoleViewer)
	}
	return ok
}

// OrgRoles returns the built-in role names that apply to the identity.
func (id *Identity) OrgRoles() []string {
	roles := make([]string, 0, 2)
	if id.IsServerAdmin {
		roles = append(roles, serverAdminRole)
	}
	if id.OrgRole != "" {
		roles = append(roles, string(id.OrgRole))
	}
	return roles
}

// RoleResolver produces a WHERE fragment selecting the identifiers of every
// role that applies to an identity: roles assigned directly to the user,
// through team membership, and through the built-in org role. The compiler
// treats it as a black box and splices the fragment into role_id membership
// subqueries.
type RoleResolver interface {
	RolesFilter(ident *Identity) Clause
}

// StandardRoleResolver resolves roles from the user_role, team_role and
// builtin_role assignment tables, scoped to the identity's org with the
// global-org (org_id = 0) fallback for roles shared across orgs.
type StandardRoleResolver struct{}

func (StandardRoleResolver) RolesFilter(ident *Identity) Clause {
	b := &ClauseBuilder{}

	b.Write(`WHERE (role.org_id = ? OR role.org_id = 0) AND role.id IN (
		SELECT ur.role_id FROM user_role AS ur WHERE ur.user_id = ? AND (ur.org_id = ? OR ur.org_id = 0)`,
		ident.OrgID, ident.UserID, ident.OrgID)

	if len(ident.Teams) > 0 {
		args := make([]any, 0, len(ident.Teams)+1)
		for _, t := range ident.Teams {
			args = append(args, t)
		}
		args = append(args, ident.OrgID)
		b.Write(`
		UNION
		SELECT tr.role_id FROM team_role AS tr WHERE tr.team_id IN (`+placeholders(len(ident.Teams))+`) AND tr.org_id = ?`,
			args...)
	}

	if roles := ident.OrgRoles(); len(roles) > 0 {
		args := make([]any, 0, len(roles)+1)
		for _, r := range roles {
			args = append(args, r)
		}
		args = append(args, ident.OrgID)
		b.Write(`
		UNION
		SELECT br.role_id FROM builtin_role AS br WHERE br.role IN (`+placeholders(len(roles))+`) AND (br.org_id = ? OR br.org_id = 0)`,
			args...)
	}

	b.Write(`
	)`)
	return b.Clause()
}
