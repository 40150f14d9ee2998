package middleware

import "context"

type contextKey string

const (
	ctxCustomerKey contextKey = "customer_key"
	ctxIsAdmin     contextKey = "is_admin"
)

func CustomerKeyFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCustomerKey).(string); ok {
		return v
	}
	return ""
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

// WithCustomerKey injects the customer identifier into the context.
func WithCustomerKey(ctx context.Context, customerKey string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCustomerKey, customerKey)
}

// WithIsAdmin marks the request as coming from an authenticated admin.
func WithIsAdmin(ctx context.Context, isAdmin bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}
