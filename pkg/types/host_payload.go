package types

import "github.com/dmtumanov/beanline-backend/pkg/enums"

// OrderPayloadItem is one cart line as the host expects it. Price is the
// derived per-unit price (line total divided by count) so the host can
// reconstruct the line total as price × count even when options were priced
// into the bundled total.
type OrderPayloadItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Size    string  `json:"size"`
	Count   int     `json:"count"`
	Price   float64 `json:"price"`
	Details string  `json:"details"`
}

// OrderPayload is the single outbound order command for the host.
type OrderPayload struct {
	Action     enums.HostAction   `json:"action"`
	Items      []OrderPayloadItem `json:"items"`
	Total      int                `json:"total"`
	PickupTime string             `json:"pickupTime"`
	Comment    string             `json:"comment"`
}

// MenuUpdatePayload tells the host which products are currently hidden.
type MenuUpdatePayload struct {
	Action      enums.HostAction `json:"action"`
	HiddenItems []string         `json:"hiddenItems"`
}

// MenuRefreshPayload asks the host to re-render its menu view.
type MenuRefreshPayload struct {
	Action enums.HostAction `json:"action"`
}
