package controllers

import (
	"net/http"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/order"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

type checkoutRequest struct {
	PickupMode string `json:"pickup_mode" validate:"required,oneof=asap scheduled"`
	PickupTime string `json:"pickup_time"`
	Comment    string `json:"comment" validate:"max=500"`
	PromoCode  string `json:"promo_code"`
}

// Checkout submits the customer's cart as an order to the host.
func Checkout(orders *order.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerKey := middleware.CustomerKeyFromContext(r.Context())
		result, err := orders.Checkout(r.Context(), customerKey, order.CheckoutInput{
			PickupMode: enums.PickupMode(req.PickupMode),
			PickupTime: req.PickupTime,
			Comment:    req.Comment,
			PromoCode:  req.PromoCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
