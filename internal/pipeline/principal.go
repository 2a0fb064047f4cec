package pipeline

import "vgcatalog/internal/models"

// Principal is the authenticated caller and its role set, established by the
// token middleware upstream of the pipeline. The zero value is an anonymous
// caller with no roles.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}

// Anonymous is the principal of an unauthenticated request.
var Anonymous = Principal{}

// HasRole reports whether the principal carries the given role token.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RolePredicate decides whether a principal may perform an operation.
type RolePredicate func(Principal) bool

// AnyCaller admits every principal, including anonymous ones.
func AnyCaller(Principal) bool { return true }

// AdminOnly admits principals carrying the admin role.
func AdminOnly(p Principal) bool { return p.HasRole(models.RoleAdmin) }
