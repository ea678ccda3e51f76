// Package receipt lays out customer bills and kitchen order tickets on
// a fixed-width character grid for thermal printers. The engine is a
// pure layout computation: it takes caller-assembled data, estimates
// the page height from the wrapped content, and returns a Document.
// Presentation (sending to a printer, returning over HTTP) is the
// caller's job.
package receipt

import "math"

// OrderLine is a single line item on a bill. All monetary values are
// in paisa. Amount is caller-computed; the engine never re-derives it
// from Rate and Quantity.
type OrderLine struct {
	Name     string
	Quantity int
	Rate     int64
	Amount   int64
}

// Adjustment is an optional monetary value on the totals block.
// The zero value is absent. A present-but-zero adjustment is treated
// the same as an absent one: its row is suppressed.
type Adjustment struct {
	paisa int64
	set   bool
}

// Amount returns a present adjustment holding the given paisa value.
func Amount(paisa int64) Adjustment {
	return Adjustment{paisa: paisa, set: true}
}

// Printed reports whether the adjustment gets a totals row.
func (a Adjustment) Printed() bool {
	return a.set && a.paisa != 0
}

// Paisa returns the adjustment value in paisa.
func (a Adjustment) Paisa() int64 {
	return a.paisa
}

// BillData is the input for a customer bill. It is assembled by the
// caller immediately before rendering, used once, and discarded.
type BillData struct {
	RestaurantName     string
	RestaurantLocation string // omitted from the header when empty
	Date               string // preformatted by the caller

	SubTotal      Adjustment
	Discount      Adjustment
	ServiceCharge Adjustment
	Tax           Adjustment
	Total         int64 // always printed, even when zero

	Lines []OrderLine
}

// TicketItem is a single item on a kitchen order ticket.
type TicketItem struct {
	Name     string
	Quantity int
	Notes    string
}

// KitchenTicket is the input for a KOT. Prices never appear on a KOT.
type KitchenTicket struct {
	RestaurantName string
	KOTNo          string
	GroupName      string
	Date           string
	Items          []TicketItem
}

// rupees converts paisa to whole rupees for display, rounding to the
// nearest integer. Display-only: the underlying value is never mutated.
func rupees(paisa int64) int64 {
	return int64(math.Round(float64(paisa) / 100))
}
