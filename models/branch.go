package models

type Branch struct {
	Base
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Address      string  `gorm:"type:varchar(255);not null" json:"address"`
	Phone        string  `gorm:"type:varchar(50);not null" json:"phone"`
	AdminUserID  string  `gorm:"type:varchar(36);not null;index" json:"admin_user_id"`
	AdminUser    *User   `gorm:"foreignKey:AdminUserID" json:"admin_user,omitempty"`
	HotelBrandID *string `gorm:"type:varchar(36);index" json:"hotel_brand_id"`
}
