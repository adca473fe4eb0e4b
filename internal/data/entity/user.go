package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// ValidRole reports whether role is in the closed role set.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID       int64    `db:"id"`
	Username string   `db:"username"`
	Password string   `db:"password"` // bcrypt hash, never the raw value
	Role     UserRole `db:"role"`
}
