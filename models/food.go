package models

type Food struct {
	Base
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Type         string  `gorm:"type:varchar(100);not null" json:"type"`
	Image        *string `gorm:"type:varchar(512)" json:"image,omitempty"`
	HotelBrandID string  `gorm:"type:varchar(36);not null;index" json:"hotel_brand_id"`
}
