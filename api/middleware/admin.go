package middleware

import (
	"net/http"
	"strings"

	"github.com/dmtumanov/beanline-backend/api/responses"
	"github.com/dmtumanov/beanline-backend/pkg/auth"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

const bearerPrefix = "Bearer "

// DetectAdmin validates an admin token when one is presented and flags the
// context accordingly. Requests without a token pass through as regular
// customers; a bad token is treated the same way rather than rejected, so
// stale admin sessions degrade to the public view.
func DetectAdmin(cfg config.AdminConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if token := bearerToken(r); token != "" {
				if _, err := auth.ParseAdminToken(cfg, token); err == nil {
					ctx = WithIsAdmin(ctx, true)
				} else if logg != nil {
					logg.Warn(logg.WithField(ctx, "reason", err.Error()), "admin token rejected")
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin refuses any request without a valid admin token.
func RequireAdmin(cfg config.AdminConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "admin token required"))
				return
			}
			if _, err := auth.ParseAdminToken(cfg, token); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid admin token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIsAdmin(r.Context(), true)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
