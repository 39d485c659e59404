package entity

// Space partitions credential records. A user and an admin with the same
// email are independent identities.
type Space string

const (
	SpaceUser  Space = "user"
	SpaceAdmin Space = "admin"
)

type Identity struct {
	ID       int    `json:"id"`
	Space    Space  `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Photo    string `json:"photo"`
}
