package controllers

import (
	"context"
	"net/http"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/promo"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

type promoPreviewRequest struct {
	Code string `json:"code" validate:"required"`
}

// FirstOrderChecker answers whether the customer has ever submitted an order.
type FirstOrderChecker interface {
	IsFirstOrder(ctx context.Context, customerKey string) (bool, error)
}

// PromoPreview evaluates a promo code against the current cart without
// committing anything.
func PromoPreview(promoSvc promo.Service, carts *cart.Manager, orders FirstOrderChecker, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req promoPreviewRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerKey := middleware.CustomerKeyFromContext(r.Context())
		snapshot := carts.Snapshot(customerKey)

		isFirst, err := orders.IsFirstOrder(r.Context(), customerKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := promoSvc.Apply(r.Context(), req.Code, snapshot.Total, isFirst)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
