package enums

// OrderStatus tracks the lifecycle of a submitted order snapshot.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusFailed    OrderStatus = "failed"
)

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the order status is recognized.
func (o OrderStatus) IsValid() bool {
	return o == OrderStatusPending || o == OrderStatusSubmitted || o == OrderStatusFailed
}
