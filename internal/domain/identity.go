package domain

// Role is the authorization level attached to an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the allowed values.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Identity is the authenticated principal carried by a session.
type Identity struct {
	Username string
	Role     Role
	Name     string
	Email    string
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Credential is a stored account. PasswordHash is a bcrypt hash.
type Credential struct {
	Username     string
	PasswordHash []byte
	Role         Role
	Name         string
	Email        string
}

// Identity returns a copy of the account's public identity.
func (c *Credential) Identity() Identity {
	return Identity{
		Username: c.Username,
		Role:     c.Role,
		Name:     c.Name,
		Email:    c.Email,
	}
}
