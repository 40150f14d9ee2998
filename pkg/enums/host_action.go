package enums

// HostAction discriminates the commands accepted by the messaging-bot host.
type HostAction string

const (
	HostActionOrder       HostAction = "order"
	HostActionUpdateMenu  HostAction = "update_menu"
	HostActionRefreshMenu HostAction = "refresh_menu"
)

// String implements fmt.Stringer.
func (h HostAction) String() string {
	return string(h)
}
