package models

// User is an account attached, optionally, to a hotel brand and a branch.
// Password always holds a bcrypt hash; plaintext never reaches the store.
type User struct {
	Base
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role       `gorm:"type:varchar(32);not null;index" json:"role"`
	HotelBrandID *string    `gorm:"type:varchar(36);index" json:"hotel_brand_id"`
	BranchID     *string    `gorm:"type:varchar(36);index" json:"branch_id"`
	Permissions  StringList `gorm:"type:text" json:"permissions"`
}
