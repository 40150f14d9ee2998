package promo

import (
	"context"
	"fmt"

	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a successful promo application.
type Result struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	Total           int    `json:"total"`
	PayableTotal    int    `json:"payable_total"`
}

// Service evaluates promo codes against a cart total.
type Service interface {
	Apply(ctx context.Context, code string, cartTotal int, isFirstOrder bool) (Result, error)
}

type service struct {
	repo Repository
}

// NewService wires the promo evaluator over its repository.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Apply resolves the code case-insensitively and computes the discounted
// total. First-order-only codes are refused for returning customers.
func (s *service) Apply(ctx context.Context, code string, cartTotal int, isFirstOrder bool) (Result, error) {
	promo, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up promo code")
	}
	if promo == nil {
		return Result{}, pkgerrors.New(pkgerrors.CodeUnknownPromoCode,
			fmt.Sprintf("promo code %q does not exist", Canonicalize(code)))
	}
	if promo.FirstOrderOnly && !isFirstOrder {
		return Result{}, pkgerrors.New(pkgerrors.CodePromoNotEligible,
			fmt.Sprintf("promo code %q is valid for a first order only", promo.Code))
	}

	return Result{
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		Total:           cartTotal,
		PayableTotal:    DiscountedTotal(cartTotal, promo.DiscountPercent),
	}, nil
}

// DiscountedTotal applies a percentage discount with half-up rounding to
// whole currency units. round(199 * 0.90) = 179.
func DiscountedTotal(total, discountPercent int) int {
	if discountPercent <= 0 {
		return total
	}
	if discountPercent >= 100 {
		return 0
	}
	discounted := decimal.NewFromInt(int64(total)).
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(decimal.NewFromInt(100))
	return int(discounted.Round(0).IntPart())
}
