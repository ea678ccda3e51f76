package receipt

import (
	"strconv"
	"strings"
)

// EstimateTicketHeight returns the page height in mm for a kitchen
// ticket, mirroring EstimateHeight for bills.
func (e *Engine) EstimateTicketHeight(t KitchenTicket) float64 {
	rows := 0
	width := e.p.Width - e.p.QtyWidth
	if width < 1 {
		width = 1
	}
	for _, it := range t.Items {
		rows += len(wrap(strings.ToUpper(it.Name), width))
		if it.Notes != "" {
			rows += len(wrap(it.Notes, width-2))
		}
	}
	return e.p.HeaderSpace + float64(rows)*e.p.LineHeight + e.p.FooterSpace
}

// RenderTicket lays out a kitchen order ticket: no prices, just items,
// quantities and preparation notes for the kitchen.
func (e *Engine) RenderTicket(t KitchenTicket) *Document {
	doc := &Document{
		width:    e.p.Width,
		heightMM: e.EstimateTicketHeight(t),
	}

	doc.add(Line{Text: t.RestaurantName, Center: true})
	doc.add(Line{Text: "KOT " + t.KOTNo, Center: true, Bold: true, Double: true})
	if t.GroupName != "" {
		doc.add(Line{Text: t.GroupName, Center: true})
	}
	doc.add(Line{Text: t.Date, Center: true})
	doc.add(Line{Rule: true})

	width := e.p.Width - e.p.QtyWidth
	if width < 1 {
		width = 1
	}
	for _, it := range t.Items {
		frags := wrap(strings.ToUpper(it.Name), width)
		for j, frag := range frags {
			qty := ""
			if j == 0 {
				qty = "x" + strconv.Itoa(it.Quantity)
			}
			row := make([]byte, e.p.Width)
			for i := range row {
				row[i] = ' '
			}
			placeLeft(row, 0, width, frag)
			placeRight(row, e.p.Width, qty)
			doc.add(Line{Text: strings.TrimRight(string(row), " ")})
		}
		if it.Notes != "" {
			for _, frag := range wrap(it.Notes, width-2) {
				doc.add(Line{Text: "  " + frag})
			}
		}
	}
	doc.add(Line{Rule: true})

	return doc
}
