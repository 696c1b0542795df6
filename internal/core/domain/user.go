package domain

// Role is the closed set of authorization levels. There is no hierarchy:
// a route requiring RoleUser is not satisfied by RoleAdmin, and vice versa.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole converts a raw role string into a Role, rejecting anything
// outside the closed set. Used at the registry boundary so unknown roles
// never reach token issuance.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models an account held by the registry.
type User struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Identity is what the authorization filter exposes to handlers once a
// request has been admitted. It carries no credential material.
type Identity struct {
	UID  string `json:"uid"`
	Role Role   `json:"role"`
}
