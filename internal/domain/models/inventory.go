package models

// Hotel holds property-level data; rooms carry the prices.
type Hotel struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	Name    string `json:"name"`
	Stars   int    `json:"stars"`
	City    string `json:"city"`
	Info    string `json:"info"`
}

// Room is a sellable room category for a hotel, priced for the package's
// standard night count with a per-night rate for extensions.
type Room struct {
	ID              int64   `json:"id"`
	HotelID         int64   `json:"hotel_id"`
	Category        string  `json:"category"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Nights          int     `json:"nights"`
	Price           float64 `json:"price"`
	ExtraNightPrice float64 `json:"extra_night_price"`
	Remaining       int     `json:"remaining"`
}

// Ticket is grandstand/general admission inventory for an event.
type Ticket struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Remaining int     `json:"remaining"`
}

// CircuitTransfer shuttles guests between hotel and circuit. Priced per
// traveller; quantity always tracks the ticket count.
type CircuitTransfer struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	HotelID   int64   `json:"hotel_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Remaining int     `json:"remaining"`
}

// AirportTransfer is priced per vehicle; the vehicle count is derived from
// the party size and MaxCapacity, never set by the operator.
type AirportTransfer struct {
	ID          int64   `json:"id"`
	EventID     int64   `json:"event_id"`
	HotelID     int64   `json:"hotel_id"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	MaxCapacity int     `json:"max_capacity"`
	Remaining   int     `json:"remaining"`
}

// Flight is an optional package component; BookedByGuest flights contribute
// nothing to the total.
type Flight struct {
	ID            int64   `json:"id"`
	EventID       int64   `json:"event_id"`
	Outbound      string  `json:"outbound"`
	Inbound       string  `json:"inbound"`
	Airline       string  `json:"airline"`
	Class         string  `json:"class"`
	Price         float64 `json:"price"`
	BookedByGuest bool    `json:"booked_by_guest"`
	Remaining     int     `json:"remaining"`
}

// LoungePass grants airport lounge access, priced per person.
type LoungePass struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	Variant   string  `json:"variant"`
	Price     float64 `json:"price"`
	Remaining int     `json:"remaining"`
}
