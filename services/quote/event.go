package quote

type EventType string

const (
	EventTypeProductPageEnter EventType = "product_page_enter"
	EventTypeProductPageExit  EventType = "product_page_exit"
	EventTypeProductShare     EventType = "product_share"
	EventTypeFavoriteAdd      EventType = "favorite_add"
	EventTypeFavoriteRemove   EventType = "favorite_remove"
	EventTypeCartAdd          EventType = "cart_add"
	EventTypeCartRemove       EventType = "cart_remove"
	EventTypeRAChecked        EventType = "ra_checked"
	EventTypeRAUnchecked      EventType = "ra_unchecked"
	EventTypeCheckoutBegin    EventType = "checkout_begin"
	EventTypeCheckoutComplete EventType = "checkout_complete"
)

// Event is a shopper activity reported to the events endpoint. Each event type has its own event info schema.
type Event struct {
	ClientIP    string     `json:"client_ip"`
	CustomerID  string     `json:"customer_id"`
	DeviceID    string     `json:"device_id,omitempty"`
	EventID     string     `json:"event_id,omitempty"`
	EventInfo   *EventInfo `json:"event_info,omitempty"`
	EventSource string     `json:"event_source"`
	EventTs     string     `json:"event_ts"`
	EventType   EventType  `json:"event_type"`
	SessionID   string     `json:"session_id"`
}

type EventInfo struct {
	UserEmail       string                `json:"user_email,omitempty"`
	ShippingAddress *EventShippingAddress `json:"shipping_address,omitempty"`
	UserPhoneNumber string                `json:"user_phone_number,omitempty"`
}

type EventShippingAddress struct {
	State   string `json:"shipping_address_state"`
	City    string `json:"shipping_address_city"`
	Zipcode string `json:"shipping_address_zipcode"`
	Country string `json:"shipping_address_country"`
}
