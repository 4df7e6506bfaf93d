package models

// DateRange is the operator-selected stay, inclusive on both ends.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SelectionSet accumulates the operator's picks for a quote or booking.
// Every component is optional; absent components contribute nothing to the
// total. OriginalNights is the package's standard stay; selecting a longer
// range bills the extra nights at the room's extra-night rate.
type SelectionSet struct {
	Room         *Room `json:"room,omitempty"`
	RoomQuantity int   `json:"room_quantity"`

	Ticket         *Ticket `json:"ticket,omitempty"`
	TicketQuantity int     `json:"ticket_quantity"`

	CircuitTransfer *CircuitTransfer `json:"circuit_transfer,omitempty"`

	AirportTransfer         *AirportTransfer `json:"airport_transfer,omitempty"`
	AirportTransferQuantity int              `json:"airport_transfer_quantity"`

	Flight         *Flight `json:"flight,omitempty"`
	FlightQuantity int     `json:"flight_quantity"`

	LoungePass         *LoungePass `json:"lounge_pass,omitempty"`
	LoungePassQuantity int         `json:"lounge_pass_quantity"`

	DateRange      DateRange `json:"date_range"`
	OriginalNights int       `json:"original_nights"`
	NumberOfAdults int       `json:"number_of_adults"`
}

// IsEmpty reports whether nothing sellable was picked.
func (s SelectionSet) IsEmpty() bool {
	return s.Room == nil && s.Ticket == nil && s.CircuitTransfer == nil &&
		s.AirportTransfer == nil && s.Flight == nil && s.LoungePass == nil
}
