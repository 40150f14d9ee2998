package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/types"
)

const (
	defaultTimeout             = 60 * time.Second
	errorBodyReadLimit   int64 = 1024
)

var errWebhookURLRequired = errors.New("host webhook url is required")

// Client delivers one-shot commands to the messaging-bot host. Delivery is
// fire-and-forget: the host sends no acknowledgment, so only transport-level
// failures are observable.
type Client struct {
	httpClient *http.Client
	webhookURL string
	authToken  string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds the host client from configuration.
func NewClient(cfg config.HostConfig, opts ...Option) (*Client, error) {
	webhookURL := strings.TrimSpace(cfg.WebhookURL)
	if webhookURL == "" {
		return nil, errWebhookURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		webhookURL: webhookURL,
		authToken:  strings.TrimSpace(cfg.AuthToken),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}

	return client, nil
}

// SendOrder dispatches an order payload to the host.
func (c *Client) SendOrder(ctx context.Context, payload types.OrderPayload) error {
	payload.Action = enums.HostActionOrder
	return c.send(ctx, payload)
}

// SendMenuUpdate tells the host which product ids are hidden.
func (c *Client) SendMenuUpdate(ctx context.Context, hiddenItems []string) error {
	if hiddenItems == nil {
		hiddenItems = []string{}
	}
	return c.send(ctx, types.MenuUpdatePayload{
		Action:      enums.HostActionUpdateMenu,
		HiddenItems: hiddenItems,
	})
}

// SendMenuRefresh asks the host to re-render its menu view.
func (c *Client) SendMenuRefresh(ctx context.Context) error {
	return c.send(ctx, types.MenuRefreshPayload{Action: enums.HostActionRefreshMenu})
}

func (c *Client) send(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode host payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build host request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			return pkgerrors.Wrap(pkgerrors.CodeSubmissionTimeout, err, "host did not respond in time")
		}
		return pkgerrors.Wrap(pkgerrors.CodeSubmissionTransport, err, "deliver host command")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.New(pkgerrors.CodeSubmissionTransport,
			fmt.Sprintf("host rejected command with status %d", resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode, "body": string(snippet)})
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func isClientTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
