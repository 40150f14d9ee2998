package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/visibility"
)

type catalogEntry struct {
	catalog.Product
	Hidden bool `json:"hidden,omitempty"`
}

// CatalogList serves the menu. Customers only see visible products; admins
// see everything with hidden entries flagged.
func CatalogList(cat *catalog.Catalog, prefsSvc *prefs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hiddenIDs, err := prefsSvc.HiddenProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isAdmin := middleware.IsAdminFromContext(r.Context())
		products := visibility.FilterProducts(cat.Products(), hiddenIDs, isAdmin)
		hidden := visibility.HiddenSet(hiddenIDs)

		entries := make([]catalogEntry, 0, len(products))
		for _, p := range products {
			_, isHidden := hidden[p.ID]
			entries = append(entries, catalogEntry{Product: p, Hidden: isAdmin && isHidden})
		}

		responses.WriteSuccess(w, map[string]any{"products": entries})
	}
}

// CatalogGet serves a single product. Hidden products 404 for customers but
// stay reachable for admins.
func CatalogGet(cat *catalog.Catalog, prefsSvc *prefs.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		product, ok := cat.Product(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		hiddenIDs, err := prefsSvc.HiddenProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		isAdmin := middleware.IsAdminFromContext(r.Context())
		hidden := visibility.HiddenSet(hiddenIDs)
		if !visibility.IsVisible(productID, hidden, isAdmin) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		_, isHidden := hidden[productID]
		responses.WriteSuccess(w, catalogEntry{Product: product, Hidden: isAdmin && isHidden})
	}
}
