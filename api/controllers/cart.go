package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/options"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

type cartAddRequest struct {
	ProductID    string            `json:"product_id" validate:"required"`
	VariantIndex int               `json:"variant_index" validate:"min=0"`
	Quantity     int               `json:"quantity" validate:"required,min=1"`
	Selection    options.Selection `json:"selection"`
}

// CartFetch returns the customer's current cart snapshot.
func CartFetch(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerKey := middleware.CustomerKeyFromContext(r.Context())
		responses.WriteSuccess(w, carts.Snapshot(customerKey))
	}
}

// CartAddItem adds a configured item, merging into an existing line when the
// configuration matches.
func CartAddItem(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cartAddRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customerKey := middleware.CustomerKeyFromContext(r.Context())
		line, err := carts.AddItem(customerKey, req.ProductID, req.VariantIndex, req.Quantity, req.Selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"line": line,
			"cart": carts.Snapshot(customerKey),
		})
	}
}

// CartRemoveItem drops an entire line by its key. Removing an absent key
// is a no-op so retried deletes stay idempotent.
func CartRemoveItem(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Line keys contain '|' so clients send them percent-encoded.
		lineKey := chi.URLParam(r, "lineKey")
		if decoded, err := url.PathUnescape(lineKey); err == nil {
			lineKey = decoded
		}
		customerKey := middleware.CustomerKeyFromContext(r.Context())

		carts.RemoveItem(customerKey, lineKey)
		responses.WriteSuccess(w, carts.Snapshot(customerKey))
	}
}

// CartClear empties the cart.
func CartClear(carts *cart.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerKey := middleware.CustomerKeyFromContext(r.Context())
		carts.Clear(customerKey)
		responses.WriteSuccess(w, carts.Snapshot(customerKey))
	}
}
