package order

import (
	"strings"

	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/options"
	"github.com/dmtumanov/beanline-backend/pkg/enums"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/types"
)

// ASAPPickupLabel is the pickup value the host receives for as-soon-as-
// possible orders.
const ASAPPickupLabel = "asap"

// ResolvePickupTime maps the pickup mode and optional time value to the
// string the host expects. Scheduled pickups without a time are refused.
func ResolvePickupTime(mode enums.PickupMode, timeValue string) (string, error) {
	switch mode {
	case enums.PickupASAP:
		return ASAPPickupLabel, nil
	case enums.PickupScheduled:
		timeValue = strings.TrimSpace(timeValue)
		if timeValue == "" {
			return "", pkgerrors.New(pkgerrors.CodeMissingScheduledTime,
				"scheduled pickup requires a time")
		}
		return timeValue, nil
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown pickup mode")
	}
}

// BuildItems converts merged cart lines into host payload items. The per-
// unit price is reconstructed from the line total so surcharges folded into
// merged lines survive the conversion exactly.
func BuildItems(lines []cart.Line) []types.OrderPayloadItem {
	items := make([]types.OrderPayloadItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, types.OrderPayloadItem{
			ID:      line.ProductID,
			Name:    line.ProductName,
			Size:    line.Size,
			Count:   line.Quantity,
			Price:   float64(line.TotalPrice) / float64(line.Quantity),
			Details: options.Summary(line.Size, line.Selection),
		})
	}
	return items
}

// BuildPayload assembles the full order command for the host. The cart must
// already have passed the checkout gates.
func BuildPayload(lines []cart.Line, payableTotal int, pickupTime, comment string) types.OrderPayload {
	return types.OrderPayload{
		Action:     enums.HostActionOrder,
		Items:      BuildItems(lines),
		Total:      payableTotal,
		PickupTime: pickupTime,
		Comment:    comment,
	}
}
