// Package policy decides who may call what, and which records a caller can
// see once they are allowed in.
package policy

import "github.com/yeremiapane/hotel-brand-api/models"

// Identity is the authenticated caller, resolved once per request.
type Identity struct {
	UserID       string
	Role         models.Role
	HotelBrandID *string
	BranchID     *string
	Permissions  []string
}

func IdentityFromUser(u *models.User) Identity {
	return Identity{
		UserID:       u.ID,
		Role:         u.Role,
		HotelBrandID: u.HotelBrandID,
		BranchID:     u.BranchID,
		Permissions:  append([]string(nil), u.Permissions...),
	}
}

// HasBrand reports whether the caller is attached to a hotel brand.
func (id Identity) HasBrand() bool {
	return id.HotelBrandID != nil && *id.HotelBrandID != ""
}

func (id Identity) HasBranch() bool {
	return id.BranchID != nil && *id.BranchID != ""
}
