package promo

import (
	"context"
	"errors"
	"strings"

	"github.com/dmtumanov/beanline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository looks up promo codes.
type Repository interface {
	FindActiveByCode(ctx context.Context, code string) (*models.PromoCode, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository builds the GORM-backed promo repository.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// FindActiveByCode returns the active promo code matching the canonical
// uppercase form of the input. A nil result without error means no match.
func (r *gormRepository) FindActiveByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	canonical := Canonicalize(code)
	if canonical == "" {
		return nil, nil
	}

	var promo models.PromoCode
	err := r.db.WithContext(ctx).
		Where("code = ? AND active = ?", canonical, true).
		First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// Canonicalize folds user input into stored promo code form.
func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
