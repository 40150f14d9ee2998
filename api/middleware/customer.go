package middleware

import (
	"net/http"
	"strings"

	"github.com/dmtumanov/beanline-backend/api/responses"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
)

const customerIDHeader = "X-Customer-Id"

// CustomerSession requires the storefront's customer identifier header and
// threads it through the request context. Carts, favorites and order history
// are all keyed by it.
func CustomerSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customerKey := strings.TrimSpace(r.Header.Get(customerIDHeader))
			if customerKey == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, customerIDHeader+" header required"))
				return
			}

			ctx := WithCustomerKey(r.Context(), customerKey)
			if logg != nil {
				ctx = logg.WithCustomerID(ctx, customerKey)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
