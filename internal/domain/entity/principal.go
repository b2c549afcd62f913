package entity

import "github.com/google/uuid"

// Principal is the verified identity behind a validated access credential.
// It is returned by access verification and passed explicitly to the flows that need it.
type Principal struct {
	AccountID uuid.UUID
	Email     string
	Name      string
	Role      Role
	Active    bool

	// AccessToken is the raw bearer token that produced this principal.
	AccessToken string `json:"-"`
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Role == role
}
