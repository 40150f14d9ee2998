package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/security"
)

type fakeMenuMessenger struct {
	hiddenUpdates [][]string
	refreshes     int
	err           error
}

func (f *fakeMenuMessenger) SendMenuUpdate(_ context.Context, hiddenItems []string) error {
	if f.err != nil {
		return f.err
	}
	f.hiddenUpdates = append(f.hiddenUpdates, hiddenItems)
	return nil
}

func (f *fakeMenuMessenger) SendMenuRefresh(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.refreshes++
	return nil
}

type memoryPrefsStore struct {
	sets map[string]map[string]struct{}
}

func newMemoryPrefsStore() *memoryPrefsStore {
	return &memoryPrefsStore{sets: map[string]map[string]struct{}{}}
}

func (m *memoryPrefsStore) SAdd(_ context.Context, key string, members ...any) error {
	set, ok := m.sets[key]
	if !ok {
		set = map[string]struct{}{}
		m.sets[key] = set
	}
	for _, member := range members {
		set[member.(string)] = struct{}{}
	}
	return nil
}

func (m *memoryPrefsStore) SRem(_ context.Context, key string, members ...any) error {
	for _, member := range members {
		delete(m.sets[key], member.(string))
	}
	return nil
}

func (m *memoryPrefsStore) SMembers(_ context.Context, key string) ([]string, error) {
	var out []string
	for member := range m.sets[key] {
		out = append(out, member)
	}
	return out, nil
}

func (m *memoryPrefsStore) SIsMember(_ context.Context, key string, member any) (bool, error) {
	_, ok := m.sets[key][member.(string)]
	return ok, nil
}

func (m *memoryPrefsStore) PrefsKey(parts ...string) string {
	return "bl:prefs:" + strings.Join(parts, ":")
}

func adminTestConfig(t *testing.T) config.AdminConfig {
	t.Helper()
	hash, err := security.HashPasscode("4217", config.PasscodeConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	})
	require.NoError(t, err)
	return config.AdminConfig{
		PasscodeHash:    hash,
		TokenSecret:     "test-secret",
		TokenTTLMinutes: 60,
	}
}

func TestAdminLogin(t *testing.T) {
	handler := AdminLogin(adminTestConfig(t), nil)

	t.Run("valid passcode mints a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"passcode":"4217"}`))
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data struct {
				Token     string `json:"token"`
				ExpiresIn int    `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data.Token)
		assert.Equal(t, 3600, body.Data.ExpiresIn)
	})

	t.Run("wrong passcode is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{"passcode":"0000"}`))
		rec := httptest.NewRecorder()
		handler(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing passcode fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		handler(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func newAdminMenuRouter(prefsSvc *prefs.Service, host *fakeMenuMessenger) http.Handler {
	cat := catalog.Default()
	r := chi.NewRouter()
	r.Post("/menu/{productId}/hide", AdminHideProduct(prefsSvc, cat, host, nil))
	r.Post("/menu/{productId}/unhide", AdminUnhideProduct(prefsSvc, cat, host, nil))
	r.Post("/menu/refresh", AdminMenuRefresh(host, nil))
	return r
}

func TestAdminHideUnhideProduct(t *testing.T) {
	prefsSvc := prefs.NewService(newMemoryPrefsStore())
	host := &fakeMenuMessenger{}
	router := newAdminMenuRouter(prefsSvc, host)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/cappuccino/hide", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	hidden, err := prefsSvc.HiddenProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cappuccino"}, hidden)
	require.Len(t, host.hiddenUpdates, 1)
	assert.Equal(t, []string{"cappuccino"}, host.hiddenUpdates[0])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/cappuccino/unhide", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	hidden, err = prefsSvc.HiddenProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, hidden)
}

func TestAdminHideProduct_UnknownProduct(t *testing.T) {
	prefsSvc := prefs.NewService(newMemoryPrefsStore())
	router := newAdminMenuRouter(prefsSvc, &fakeMenuMessenger{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/unicorn-frappe/hide", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminMenuRefresh(t *testing.T) {
	host := &fakeMenuMessenger{}
	router := newAdminMenuRouter(prefs.NewService(newMemoryPrefsStore()), host)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu/refresh", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, host.refreshes)
}
