package model

// Role 用户角色
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleEditor      Role = "editor"
	RoleContributor Role = "contributor"
	RoleViewer      Role = "viewer"
)

var Roles = []Role{RoleAdmin, RoleEditor, RoleContributor, RoleViewer}

func (r Role) IsValid() bool {
	return contains(Roles, r)
}
