package policy

import (
	"github.com/littlelemon/backend/domain"
)

// Principal is the authenticated identity a request acts as. It is built
// once per request from the token and the stored group memberships; the
// policy itself never touches storage.
type Principal struct {
	UserID        string
	Authenticated bool
	Superuser     bool
	Groups        []string
}

func (p Principal) InGroup(name string) bool {
	for _, g := range p.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// Requirement names the role condition an endpoint demands.
type Requirement int

const (
	RequireNone Requirement = iota
	RequireAuthenticated
	RequireAdmin
	RequireManager
	RequireCrew
	RequireAdminAndManager
	RequireAdminAndCrew
	RequireAdminOrManager
	RequireAdminOrCrew
)

// CombineMode selects how the admin+role requirements compose. The previous
// system stacks its admin and group checks so that both must pass at once,
// which locks out every non-superuser manager and crew member. That reading
// is the default; CombineOr is the corrected one.
type CombineMode int

const (
	CombineAnd CombineMode = iota
	CombineOr
)

type Policy struct {
	Combine CombineMode
}

// Default reproduces the conjunctive behavior of the previous system.
func Default() Policy {
	return Policy{Combine: CombineAnd}
}

// Authorize is a pure predicate: nil on allow, domain.ErrUnauthenticated for
// a missing identity, domain.ErrForbidden for an insufficient one.
func (p Policy) Authorize(principal Principal, req Requirement) error {
	if req == RequireNone {
		return nil
	}
	if !principal.Authenticated {
		return domain.ErrUnauthenticated
	}

	switch req {
	case RequireAuthenticated:
		return nil
	case RequireAdmin:
		if principal.Superuser {
			return nil
		}
	case RequireManager:
		if principal.InGroup(domain.GroupManagers) {
			return nil
		}
	case RequireCrew:
		if principal.InGroup(domain.GroupCrew) {
			return nil
		}
	case RequireAdminAndManager:
		if p.adminWithGroup(principal, domain.GroupManagers) {
			return nil
		}
	case RequireAdminAndCrew:
		if p.adminWithGroup(principal, domain.GroupCrew) {
			return nil
		}
	case RequireAdminOrManager:
		if principal.Superuser || principal.InGroup(domain.GroupManagers) {
			return nil
		}
	case RequireAdminOrCrew:
		if principal.Superuser || principal.InGroup(domain.GroupCrew) {
			return nil
		}
	}
	return domain.ErrForbidden
}

func (p Policy) adminWithGroup(principal Principal, group string) bool {
	if p.Combine == CombineOr {
		return principal.Superuser || principal.InGroup(group)
	}
	return principal.Superuser && principal.InGroup(group)
}

// ResolveMenuItemRequirement re-derives, per request, which requirement
// governs writes on the single menu item endpoint. Memberships are not
// mutually exclusive; the checks run customer first, then crew, then
// manager, and only the first match governs.
func ResolveMenuItemRequirement(principal Principal) Requirement {
	switch {
	case principal.InGroup(domain.GroupCustomers):
		return RequireAuthenticated
	case principal.InGroup(domain.GroupCrew):
		return RequireCrew
	case principal.InGroup(domain.GroupManagers):
		return RequireManager
	}
	return RequireAuthenticated
}
