package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/api/validators"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	"github.com/dmtumanov/beanline-backend/pkg/auth"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/security"
)

type adminLoginRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// MenuMessenger is the host surface the admin menu controls need.
type MenuMessenger interface {
	SendMenuUpdate(ctx context.Context, hiddenItems []string) error
	SendMenuRefresh(ctx context.Context) error
}

// AdminLogin exchanges the static admin passcode for a bearer token. The
// passcode gates the admin view; it is not account authentication.
func AdminLogin(cfg config.AdminConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminLoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ok, err := security.VerifyPasscode(req.Passcode, cfg.PasscodeHash)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify passcode"))
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid passcode"))
			return
		}

		token, err := auth.MintAdminToken(cfg, time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint admin token"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"token":      token,
			"expires_in": int(cfg.TokenTTL().Seconds()),
		})
	}
}

// AdminHideProduct hides a product from the public storefront and notifies
// the host. Hiding an already hidden product is a no-op.
func AdminHideProduct(prefsSvc *prefs.Service, cat *catalog.Catalog, host MenuMessenger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateHiddenSet(w, r, prefsSvc, cat, host, logg, prefsSvc.HideProduct)
	}
}

// AdminUnhideProduct restores a product to the public storefront and
// notifies the host.
func AdminUnhideProduct(prefsSvc *prefs.Service, cat *catalog.Catalog, host MenuMessenger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updateHiddenSet(w, r, prefsSvc, cat, host, logg, prefsSvc.UnhideProduct)
	}
}

func updateHiddenSet(
	w http.ResponseWriter,
	r *http.Request,
	prefsSvc *prefs.Service,
	cat *catalog.Catalog,
	host MenuMessenger,
	logg *logger.Logger,
	mutate func(ctx context.Context, productID string) error,
) {
	productID := chi.URLParam(r, "productId")
	if _, ok := cat.Product(productID); !ok {
		responses.WriteError(r.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeInvalidProductReference,
				fmt.Sprintf("unknown product %q", productID)))
		return
	}

	if err := mutate(r.Context(), productID); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	hiddenIDs, err := prefsSvc.HiddenProducts(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	if err := host.SendMenuUpdate(r.Context(), hiddenIDs); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	responses.WriteSuccess(w, map[string]any{"hidden": hiddenIDs})
}

// AdminMenuRefresh asks the host to re-render its menu view.
func AdminMenuRefresh(host MenuMessenger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := host.SendMenuRefresh(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "refresh requested"})
	}
}
