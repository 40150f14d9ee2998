package prefs

import (
	"context"

	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
)

const (
	favoritesScope = "favorites"
	hiddenScope    = "hidden"
)

// Store is the subset of the redis client used for preference sets.
type Store interface {
	SAdd(ctx context.Context, key string, members ...any) error
	SRem(ctx context.Context, key string, members ...any) error
	SMembers(ctx context.Context, key string) ([]string, error)
	SIsMember(ctx context.Context, key string, member any) (bool, error)
	PrefsKey(parts ...string) string
}

// Service persists per-customer favorites and the storefront-wide hidden
// product set. Both survive restarts; everything else about a session is
// in-memory.
type Service struct {
	store Store
}

// NewService wires the preference service over its key-value store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Favorites lists the customer's favorite product ids.
func (s *Service) Favorites(ctx context.Context, customerKey string) ([]string, error) {
	members, err := s.store.SMembers(ctx, s.store.PrefsKey(favoritesScope, customerKey))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load favorites")
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}

// AddFavorite marks a product as a favorite for the customer.
func (s *Service) AddFavorite(ctx context.Context, customerKey, productID string) error {
	if err := s.store.SAdd(ctx, s.store.PrefsKey(favoritesScope, customerKey), productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save favorite")
	}
	return nil
}

// RemoveFavorite unmarks a favorite. Removing an absent id is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, customerKey, productID string) error {
	if err := s.store.SRem(ctx, s.store.PrefsKey(favoritesScope, customerKey), productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove favorite")
	}
	return nil
}

// IsFavorite reports whether the product is in the customer's favorites.
func (s *Service) IsFavorite(ctx context.Context, customerKey, productID string) (bool, error) {
	ok, err := s.store.SIsMember(ctx, s.store.PrefsKey(favoritesScope, customerKey), productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check favorite")
	}
	return ok, nil
}

// HiddenProducts lists every product id hidden from the public storefront.
func (s *Service) HiddenProducts(ctx context.Context) ([]string, error) {
	members, err := s.store.SMembers(ctx, s.store.PrefsKey(hiddenScope))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load hidden products")
	}
	if members == nil {
		members = []string{}
	}
	return members, nil
}

// HideProduct removes a product from the public storefront.
func (s *Service) HideProduct(ctx context.Context, productID string) error {
	if err := s.store.SAdd(ctx, s.store.PrefsKey(hiddenScope), productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hide product")
	}
	return nil
}

// UnhideProduct restores a product to the public storefront.
func (s *Service) UnhideProduct(ctx context.Context, productID string) error {
	if err := s.store.SRem(ctx, s.store.PrefsKey(hiddenScope), productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "unhide product")
	}
	return nil
}
