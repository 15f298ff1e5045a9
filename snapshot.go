package sift

import "fmt"

// Snapshot is a serializable compilation request: the identity plus the
// listing parameters. The CLI loads one from a YAML or JSON file to compile
// predicates offline; the field tags follow JSON so both encodings work.
type Snapshot struct {
	Identity Identity `json:"identity"`
	// Level is the minimum permission level: view, edit or admin.
	Level string `json:"level,omitempty"`
	// Type is the query type: mixed, dashboard, folder or alert-folder.
	Type string `json:"type,omitempty"`
}

// ParseLevel maps a level name to its PermissionLevel. Empty means view.
func ParseLevel(s string) (PermissionLevel, error) {
	switch s {
	case "", "view":
		return LevelView, nil
	case "edit":
		return LevelEdit, nil
	case "admin":
		return LevelAdmin, nil
	}
	return 0, fmt.Errorf("unknown permission level %q", s)
}

// ParseQueryType maps a query type name to its QueryType. Empty means mixed.
func ParseQueryType(s string) (QueryType, error) {
	switch s {
	case "", "mixed":
		return TypeMixed, nil
	case "dashboard":
		return TypeDashboard, nil
	case "folder":
		return TypeFolder, nil
	case "alert-folder":
		return TypeAlertFolder, nil
	}
	return 0, fmt.Errorf("unknown query type %q", s)
}
