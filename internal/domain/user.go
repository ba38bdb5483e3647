package domain

// DefaultGroup is assigned to a profile created on first contact.
const DefaultGroup = "не указана"

// User represents a bot user profile
type User struct {
	ID    int64
	Group string
}

// HasGroup reports whether the user picked a real group
func (u User) HasGroup() bool {
	return u.Group != "" && u.Group != DefaultGroup
}
