package host

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient(config.HostConfig{WebhookURL: url, AuthToken: "hook-token", Timeout: time.Second})
	require.NoError(t, err)
	return client
}

func TestSendOrder(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hook-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.SendOrder(context.Background(), types.OrderPayload{
		Items:      []types.OrderPayloadItem{{ID: "cappuccino", Count: 2, Price: 260}},
		Total:      520,
		PickupTime: "asap",
	})
	require.NoError(t, err)

	assert.Equal(t, string(enums.HostActionOrder), received["action"])
	assert.Equal(t, "asap", received["pickupTime"])
}

func TestSendMenuUpdate_NilItemsSerializeAsEmptyList(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	require.NoError(t, client.SendMenuUpdate(context.Background(), nil))

	assert.Equal(t, string(enums.HostActionUpdateMenu), received["action"])
	assert.Equal(t, []any{}, received["hiddenItems"])
}

func TestSendMenuRefresh(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	require.NoError(t, client.SendMenuRefresh(context.Background()))
	assert.Equal(t, string(enums.HostActionRefreshMenu), received["action"])
}

func TestSend_HostRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.SendMenuRefresh(context.Background())

	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeSubmissionTransport, domainErr.Code())
}

func TestSend_Timeout(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(config.HostConfig{WebhookURL: server.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	err = client.SendMenuRefresh(context.Background())
	<-started

	domainErr := pkgerrors.As(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, pkgerrors.CodeSubmissionTimeout, domainErr.Code())
}

func TestNewClient_RequiresWebhookURL(t *testing.T) {
	_, err := NewClient(config.HostConfig{})
	assert.Error(t, err)
}
