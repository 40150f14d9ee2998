package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

type favoriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// FavoritesList returns the customer's favorite product ids.
func FavoritesList(prefsSvc *prefs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerKey := middleware.CustomerKeyFromContext(r.Context())
		favorites, err := prefsSvc.Favorites(r.Context(), customerKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"favorites": favorites})
	}
}

// FavoritesAdd marks a known product as a favorite.
func FavoritesAdd(prefsSvc *prefs.Service, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req favoriteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if _, ok := cat.Product(req.ProductID); !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeInvalidProductReference,
					fmt.Sprintf("unknown product %q", req.ProductID)))
			return
		}

		customerKey := middleware.CustomerKeyFromContext(r.Context())
		if err := prefsSvc.AddFavorite(r.Context(), customerKey, req.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"product_id": req.ProductID})
	}
}

// FavoritesRemove unmarks a favorite. Unknown ids are a no-op.
func FavoritesRemove(prefsSvc *prefs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		customerKey := middleware.CustomerKeyFromContext(r.Context())
		if err := prefsSvc.RemoveFavorite(r.Context(), customerKey, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"product_id": productID})
	}
}
