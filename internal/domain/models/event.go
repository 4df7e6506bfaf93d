package models

// Event is a race weekend sold through one or more packages.
type Event struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Sport     string `json:"sport"`
	Venue     string `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// Package bundles event inventory sold together.
type Package struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"event_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
}

// PackageTier pre-selects a hotel/room/ticket combination within a package.
type PackageTier struct {
	ID                int64  `json:"id"`
	PackageID         int64  `json:"package_id"`
	Name              string `json:"name"`
	HotelID           int64  `json:"hotel_id"`
	RoomID            int64  `json:"room_id"`
	TicketID          int64  `json:"ticket_id"`
	CircuitTransferID int64  `json:"circuit_transfer_id"`
	AirportTransferID int64  `json:"airport_transfer_id"`
}
