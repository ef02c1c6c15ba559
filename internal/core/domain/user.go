package domain

// Role determines which parts of the system a user may operate.
type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleOperator Role = "OPERATOR"
	RoleManager  Role = "MANAGER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleOperator || r == RoleManager
}

// User models an account in the studio. Password is kept in plaintext inside
// the users collection and is always stripped before the record is exposed as
// session data. The JSON field names are the persisted wire format.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// Sanitized returns a copy of the user with the password removed. This is the
// shape stored under the session key and returned to API callers.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
