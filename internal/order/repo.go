package order

import (
	"context"
	"time"

	"github.com/dmtumanov/beanline-backend/pkg/db/models"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists checkout attempts and answers first-order checks.
type Repository interface {
	Create(ctx context.Context, order *models.Order) error
	MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	HasSubmittedOrder(ctx context.Context, customerKey string) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository builds the GORM-backed order repository.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == uuid.Nil {
			order.Lines[i].ID = uuid.New()
		}
		order.Lines[i].OrderID = order.ID
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       enums.OrderStatusSubmitted,
			"submitted_at": at,
		}).Error
}

func (r *gormRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", enums.OrderStatusFailed).Error
}

// HasSubmittedOrder reports whether the customer has at least one order that
// actually reached the host. Pending and failed attempts do not count.
func (r *gormRepository) HasSubmittedOrder(ctx context.Context, customerKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_key = ? AND status = ?", customerKey, enums.OrderStatusSubmitted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
