package models

// Role controls which projects a user can see.
type Role string

const (
	// RoleSystemAdmin sees every project.
	RoleSystemAdmin Role = "system_admin"
	// RoleProjectManager sees projects they manage or are assigned to.
	RoleProjectManager Role = "project_manager"
	// RoleDeveloper sees projects they are a member of.
	RoleDeveloper Role = "developer"
)

// User is an account that can log in. PasswordHash is a bcrypt hash and
// is never serialized.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         Role     `json:"role"`
	Department   string   `json:"department,omitempty"`
	Projects     []string `json:"projects,omitempty"`
	IsActive     bool     `json:"is_active"`
	PasswordHash string   `json:"-"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	out := u
	out.Projects = cloneStrings(u.Projects)
	return out
}
