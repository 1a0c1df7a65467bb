package policy

import (
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/repository"
)

// ResourceKind selects the scoping rule applied by ScopeFilter.
type ResourceKind int

const (
	KindHotelBrand ResourceKind = iota
	KindBranch
	KindTable
	KindFood
	KindOrder
	KindUser
)

// ScopeFilter returns the criteria restricting the records of kind the caller
// may see or change. A missing brand or branch turns into an IS NULL
// predicate, so an unattached caller matches nothing instead of everything.
//
// Users, foods and orders are listed system-wide; their filter is empty.
func ScopeFilter(id Identity, kind ResourceKind) repository.Criteria {
	switch kind {
	case KindHotelBrand:
		return repository.Criteria{"admin_user_id": id.UserID}
	case KindBranch:
		if id.Role == models.RoleSubAdmin {
			return repository.Criteria{"id": ref(id.BranchID)}
		}
		return repository.Criteria{"hotel_brand_id": ref(id.HotelBrandID)}
	case KindTable:
		return repository.Criteria{"branch_id": ref(id.BranchID)}
	default:
		return repository.Criteria{}
	}
}

// Scoped narrows a lookup by id to the caller's scope for kind. When the scope
// already pins an id that differs from recordID the result matches nothing.
// A super-admin is not tied to a brand and reaches any record by id; listings
// still go through ScopeFilter.
func Scoped(id Identity, kind ResourceKind, recordID string) repository.Criteria {
	if id.Role == models.RoleSuperAdmin {
		return repository.Criteria{"id": recordID}
	}
	scope := ScopeFilter(id, kind)
	if pinned, ok := scope["id"]; ok && pinned != recordID {
		scope["id"] = nil
		return scope
	}
	return scope.Merge(repository.Criteria{"id": recordID})
}

func ref(p *string) interface{} {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}
