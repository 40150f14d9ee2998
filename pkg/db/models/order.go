package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmtumanov/beanline-backend/pkg/enums"
)

// Order is the persisted snapshot of a checkout submission. It exists for
// audit and for first-order promo eligibility; the cart itself is never
// persisted mid-session.
type Order struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	CustomerKey     string            `gorm:"column:customer_key;not null;index"`
	Status          enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	Total           int               `gorm:"column:total;not null"`
	PayableTotal    int               `gorm:"column:payable_total;not null"`
	PromoCode       *string           `gorm:"column:promo_code"`
	DiscountPercent *int              `gorm:"column:discount_percent"`
	PickupTime      string            `gorm:"column:pickup_time;not null"`
	Comment         string            `gorm:"column:comment;not null;default:''"`
	Lines           []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	SubmittedAt     *time.Time        `gorm:"column:submitted_at"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
