package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineItem captures the snapshot of each merged cart line inside an
// order. UnitPrice is the derived line-total/quantity value sent to the host.
type OrderLineItem struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID  string    `gorm:"column:product_id;not null"`
	Name       string    `gorm:"column:name;not null"`
	Size       string    `gorm:"column:size;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	TotalPrice int       `gorm:"column:total_price;not null"`
	UnitPrice  float64   `gorm:"column:unit_price;not null"`
	Details    string    `gorm:"column:details;not null;default:''"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}
