package models

// Identity is the authenticated principal of a request.
// Role is always the one currently stored for the user, never a value
// carried inside the token.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the identity has the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Scope is the set of notes an identity is permitted to see and mutate.
//
// When AllNotes is true the scope is unrestricted and queries join the owner
// summary into the result. Otherwise every query is restricted to rows where
// user_id equals OwnerID.
type Scope struct {
	AllNotes     bool
	OwnerID      string
	IncludeOwner bool
}
