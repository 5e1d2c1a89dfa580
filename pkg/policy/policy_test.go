package policy

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/littlelemon/backend/domain"
)

func principal(authenticated, superuser bool, groups ...string) Principal {
	return Principal{
		UserID:        "u-1",
		Authenticated: authenticated,
		Superuser:     superuser,
		Groups:        groups,
	}
}

func TestAuthorize(t *testing.T) {
	c := qt.New(t)

	anonymous := principal(false, false)
	customer := principal(true, false, "customers")
	manager := principal(true, false, "managers")
	crew := principal(true, false, "crew")
	admin := principal(true, true)
	adminManager := principal(true, true, "managers")
	adminCrew := principal(true, true, "crew")

	tests := []struct {
		name      string
		principal Principal
		req       Requirement
		want      error
	}{
		{"none allows anonymous", anonymous, RequireNone, nil},
		{"authenticated rejects anonymous", anonymous, RequireAuthenticated, domain.ErrUnauthenticated},
		{"authenticated allows customer", customer, RequireAuthenticated, nil},
		{"authenticated allows crew", crew, RequireAuthenticated, nil},

		{"admin rejects anonymous", anonymous, RequireAdmin, domain.ErrUnauthenticated},
		{"admin rejects customer", customer, RequireAdmin, domain.ErrForbidden},
		{"admin rejects manager", manager, RequireAdmin, domain.ErrForbidden},
		{"admin allows superuser", admin, RequireAdmin, nil},

		{"manager group allows plain manager", manager, RequireManager, nil},
		{"manager group rejects superuser outsider", admin, RequireManager, domain.ErrForbidden},
		{"crew group allows plain crew", crew, RequireCrew, nil},
		{"crew group rejects customer", customer, RequireCrew, domain.ErrForbidden},

		{"admin and manager rejects plain manager", manager, RequireAdminAndManager, domain.ErrForbidden},
		{"admin and manager rejects plain superuser", admin, RequireAdminAndManager, domain.ErrForbidden},
		{"admin and manager allows superuser manager", adminManager, RequireAdminAndManager, nil},
		{"admin and manager rejects crew", crew, RequireAdminAndManager, domain.ErrForbidden},
		{"admin and manager rejects anonymous", anonymous, RequireAdminAndManager, domain.ErrUnauthenticated},

		{"admin and crew rejects plain crew", crew, RequireAdminAndCrew, domain.ErrForbidden},
		{"admin and crew rejects plain superuser", admin, RequireAdminAndCrew, domain.ErrForbidden},
		{"admin and crew allows superuser crew", adminCrew, RequireAdminAndCrew, nil},
		{"admin and crew rejects manager", manager, RequireAdminAndCrew, domain.ErrForbidden},

		{"admin or manager allows plain manager", manager, RequireAdminOrManager, nil},
		{"admin or manager allows plain superuser", admin, RequireAdminOrManager, nil},
		{"admin or manager rejects customer", customer, RequireAdminOrManager, domain.ErrForbidden},
		{"admin or crew allows plain crew", crew, RequireAdminOrCrew, nil},
		{"admin or crew allows plain superuser", admin, RequireAdminOrCrew, nil},
		{"admin or crew rejects customer", customer, RequireAdminOrCrew, domain.ErrForbidden},
	}

	p := Default()
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			got := p.Authorize(tt.principal, tt.req)
			if tt.want == nil {
				c.Assert(got, qt.IsNil)
			} else {
				c.Assert(got, qt.ErrorIs, tt.want)
			}
		})
	}
}

// The conjunctive admin+group reading is the inherited behavior; the
// disjunctive one is the corrected alternative. Both must stay selectable.
func TestCombineModes(t *testing.T) {
	c := qt.New(t)

	manager := principal(true, false, "managers")
	admin := principal(true, true)

	conjunctive := Policy{Combine: CombineAnd}
	c.Assert(conjunctive.Authorize(manager, RequireAdminAndManager), qt.ErrorIs, domain.ErrForbidden)
	c.Assert(conjunctive.Authorize(admin, RequireAdminAndManager), qt.ErrorIs, domain.ErrForbidden)

	disjunctive := Policy{Combine: CombineOr}
	c.Assert(disjunctive.Authorize(manager, RequireAdminAndManager), qt.IsNil)
	c.Assert(disjunctive.Authorize(admin, RequireAdminAndManager), qt.IsNil)

	crew := principal(true, false, "crew")
	c.Assert(conjunctive.Authorize(crew, RequireAdminAndCrew), qt.ErrorIs, domain.ErrForbidden)
	c.Assert(disjunctive.Authorize(crew, RequireAdminAndCrew), qt.IsNil)
}

func TestResolveMenuItemRequirement(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name   string
		groups []string
		want   Requirement
	}{
		{"customer", []string{"customers"}, RequireAuthenticated},
		{"crew", []string{"crew"}, RequireCrew},
		{"manager", []string{"managers"}, RequireManager},
		// Checks run customer, crew, manager; first match governs even
		// when the user holds several roles at once.
		{"customer and manager", []string{"customers", "managers"}, RequireAuthenticated},
		{"crew and manager", []string{"managers", "crew"}, RequireCrew},
		{"no groups", nil, RequireAuthenticated},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			got := ResolveMenuItemRequirement(principal(true, false, tt.groups...))
			c.Assert(got, qt.Equals, tt.want)
		})
	}
}
