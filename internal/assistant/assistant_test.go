package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMenuContext(t *testing.T) {
	cat := catalog.Default()
	ctxText := BuildMenuContext(cat.Products())

	assert.Contains(t, ctxText, "## coffee")
	assert.Contains(t, ctxText, "Cappuccino (190) {{cappuccino}}")
	assert.Contains(t, ctxText, "## desserts")

	// Category order is fixed: coffee before food.
	assert.Less(t, strings.Index(ctxText, "## coffee"), strings.Index(ctxText, "## food"))
}

func TestBuildMenuContext_SkipsEmptyCategories(t *testing.T) {
	cat := catalog.Default()
	var coffeeOnly []catalog.Product
	for _, p := range cat.Products() {
		if p.Category == "coffee" {
			coffeeOnly = append(coffeeOnly, p)
		}
	}

	ctxText := BuildMenuContext(coffeeOnly)
	assert.Contains(t, ctxText, "## coffee")
	assert.NotContains(t, ctxText, "## tea")
}

func TestExtractProductRefs(t *testing.T) {
	cat := catalog.Default()

	text, refs := ExtractProductRefs(
		"Try our {{cappuccino}} or a {{cheesecake}} and {{unicorn-frappe}} too! {{cappuccino}}",
		cat,
	)

	require.Len(t, refs, 2)
	assert.Equal(t, "cappuccino", refs[0].ID)
	assert.Equal(t, "cheesecake", refs[1].ID)
	assert.NotContains(t, text, "{{")
	assert.NotContains(t, text, "unicorn")
}

func TestExtractProductRefs_NoTokens(t *testing.T) {
	text, refs := ExtractProductRefs("Plain answer.", catalog.Default())
	assert.Equal(t, "Plain answer.", text)
	assert.Empty(t, refs)
}

func TestClient_Complete(t *testing.T) {
	var captured completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Hello!"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(config.AssistantConfig{
		BaseURL: server.URL,
		APIKey:  "secret",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	})

	reply, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
}

func TestClient_Complete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.AssistantConfig{BaseURL: server.URL, Model: "gpt-4o-mini", Timeout: 5 * time.Second})

	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
}

type fakeCompleter struct {
	reply string
	err   error
	seen  []Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []Message) (string, error) {
	f.seen = messages
	return f.reply, f.err
}

func TestService_Chat(t *testing.T) {
	cat := catalog.Default()
	completer := &fakeCompleter{reply: "Go for a {{latte}}!"}
	svc := NewService(completer, cat)

	visible := cat.Products()
	reply, err := svc.Chat(context.Background(), []Message{{Role: RoleUser, Content: "something milky?"}}, visible)
	require.NoError(t, err)

	assert.Equal(t, "Go for a !", reply.Text)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "latte", reply.Products[0].ID)

	// System prompt carries the visible menu.
	require.NotEmpty(t, completer.seen)
	assert.Equal(t, RoleSystem, completer.seen[0].Role)
	assert.Contains(t, completer.seen[0].Content, "{{latte}}")
}

func TestService_Chat_HiddenProductsAbsentFromContext(t *testing.T) {
	cat := catalog.Default()
	completer := &fakeCompleter{reply: "ok"}
	svc := NewService(completer, cat)

	var visible []catalog.Product
	for _, p := range cat.Products() {
		if p.ID != "cappuccino" {
			visible = append(visible, p)
		}
	}

	_, err := svc.Chat(context.Background(), nil, visible)
	require.NoError(t, err)
	assert.NotContains(t, completer.seen[0].Content, "{{cappuccino}}")
}
