package models

import "time"

// PromoCode is a percentage discount applied to the cart grand total at
// checkout. Codes are stored in canonical uppercase.
type PromoCode struct {
	Code            string    `gorm:"column:code;primaryKey"`
	DiscountPercent int       `gorm:"column:discount_percent;not null"`
	FirstOrderOnly  bool      `gorm:"column:first_order_only;not null;default:false"`
	Active          bool      `gorm:"column:active;not null;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
