package receipt

import (
	"strconv"
	"strings"
)

// Engine lays out bills and kitchen tickets for one paper profile.
// It holds no state between calls; one Engine can serve all renders
// for a given profile.
type Engine struct {
	p Profile
}

// New creates a layout engine for the given paper profile.
func New(p Profile) *Engine {
	return &Engine{p: p}
}

// Profile returns the engine's paper profile.
func (e *Engine) Profile() Profile {
	return e.p
}

// EstimateHeight walks the bill content and returns the page height in
// mm before anything is rendered: header allowance, one line height per
// wrapped item row, one per included totals row (TOTAL always counts),
// and the footer allowance.
func (e *Engine) EstimateHeight(b BillData) float64 {
	itemRows := 0
	for _, l := range b.Lines {
		itemRows += len(wrap(strings.ToUpper(l.Name), e.p.ItemWidth()))
	}

	totalsRows := 1 // the TOTAL row is unconditional
	for _, a := range []Adjustment{b.SubTotal, b.Discount, b.ServiceCharge, b.Tax} {
		if a.Printed() {
			totalsRows++
		}
	}

	return e.p.HeaderSpace +
		float64(itemRows)*e.p.LineHeight +
		float64(totalsRows)*e.p.LineHeight +
		e.p.FooterSpace
}

// RenderBill lays out a customer bill. Item rows keep their input
// order and are numbered 1..N. Long item names wrap inside the item
// column; the quantity and amount appear beside the first wrapped row
// only. Zero or absent adjustments are suppressed from the totals
// block; the TOTAL row always prints.
func (e *Engine) RenderBill(b BillData) *Document {
	doc := &Document{
		width:    e.p.Width,
		heightMM: e.EstimateHeight(b),
	}

	// Header
	doc.add(Line{Text: b.RestaurantName, Center: true, Bold: true, Double: true})
	if b.RestaurantLocation != "" {
		doc.add(Line{Text: b.RestaurantLocation, Center: true})
	}
	doc.add(Line{Text: b.Date, Center: true})
	doc.add(Line{Rule: true})

	// Table header
	doc.add(Line{Text: e.itemRow("No", "Item", "Qty", "Amt")})
	doc.add(Line{Rule: true})

	// Item rows
	for i, l := range b.Lines {
		frags := wrap(strings.ToUpper(l.Name), e.p.ItemWidth())
		for j, frag := range frags {
			if j == 0 {
				doc.add(Line{Text: e.itemRow(
					strconv.Itoa(i+1),
					frag,
					strconv.Itoa(l.Quantity),
					strconv.FormatInt(rupees(l.Amount), 10),
				)})
				continue
			}
			doc.add(Line{Text: e.itemRow("", frag, "", "")})
		}
	}
	doc.add(Line{Rule: true})

	// Totals block, fixed order, zero rows suppressed
	type totalsRow struct {
		label string
		adj   Adjustment
	}
	for _, row := range []totalsRow{
		{"SUB TOTAL", b.SubTotal},
		{"DISCOUNT", b.Discount},
		{"SERVICE", b.ServiceCharge},
		{"TAX", b.Tax},
	} {
		if row.adj.Printed() {
			doc.add(Line{Text: e.keyValue(row.label, "Rs "+strconv.FormatInt(rupees(row.adj.Paisa()), 10))})
		}
	}
	doc.add(Line{
		Text: e.keyValue("TOTAL", "Rs "+strconv.FormatInt(rupees(b.Total), 10)),
		Bold: true,
	})

	// Footer
	doc.add(Line{Text: ""})
	doc.add(Line{Text: "THANK YOU!", Center: true})

	return doc
}

// itemRow composes one row of the four-column item table: No and Item
// left-aligned, Qty right-aligned at its column edge, Amt right-aligned
// at the page margin. Overlong cell text is truncated to its column.
func (e *Engine) itemRow(no, item, qty, amt string) string {
	row := make([]byte, e.p.Width)
	for i := range row {
		row[i] = ' '
	}

	placeLeft(row, 0, e.p.NoWidth, no)
	placeLeft(row, e.p.NoWidth, e.p.ItemWidth(), item)
	placeRight(row, e.p.NoWidth+e.p.ItemWidth()+e.p.QtyWidth, qty)
	placeRight(row, e.p.Width, amt)

	return strings.TrimRight(string(row), " ")
}

// keyValue composes a label left-aligned against a value right-aligned
// at the page margin.
func (e *Engine) keyValue(label, value string) string {
	gap := e.p.Width - len(label) - len(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

func placeLeft(row []byte, start, width int, s string) {
	if len(s) > width {
		s = s[:width]
	}
	copy(row[start:], s)
}

func placeRight(row []byte, end int, s string) {
	start := end - len(s)
	if start < 0 {
		start = 0
		s = s[len(s)-end:]
	}
	copy(row[start:], s)
}
