package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill() BillData {
	return BillData{
		RestaurantName:     "NEPDINE CAFE",
		RestaurantLocation: "Bhaktapur",
		Date:               "01/01/2024 12:00",
		SubTotal:           Amount(50000),
		Discount:           Amount(0),
		ServiceCharge:      Amount(5000),
		Tax:                Amount(0),
		Total:              55000,
		Lines: []OrderLine{
			{Name: "chicken momo", Quantity: 2, Rate: 15000, Amount: 30000},
			{Name: "coke", Quantity: 1, Rate: 20000, Amount: 20000},
		},
	}
}

func textLines(doc *Document) []string {
	return strings.Split(strings.TrimRight(doc.Text(), "\n"), "\n")
}

func TestRenderBillZeroAdjustmentsSuppressed(t *testing.T) {
	doc := New(Profile80).RenderBill(sampleBill())
	text := doc.Text()

	assert.NotContains(t, text, "DISCOUNT")
	assert.NotContains(t, text, "TAX")
	assert.Contains(t, text, "SUB TOTAL")
	assert.Contains(t, text, "SERVICE")
	assert.Contains(t, text, "TOTAL")
}

func TestRenderBillEndToEnd(t *testing.T) {
	doc := New(Profile80).RenderBill(sampleBill())

	var totals []string
	for _, ln := range textLines(doc) {
		if strings.Contains(ln, "Rs ") {
			totals = append(totals, ln)
		}
	}

	require.Len(t, totals, 3)
	assert.True(t, strings.HasPrefix(totals[0], "SUB TOTAL"))
	assert.True(t, strings.HasSuffix(totals[0], "Rs 500"))
	assert.True(t, strings.HasPrefix(totals[1], "SERVICE"))
	assert.True(t, strings.HasSuffix(totals[1], "Rs 50"))
	assert.True(t, strings.HasPrefix(totals[2], "TOTAL"))
	assert.True(t, strings.HasSuffix(totals[2], "Rs 550"))

	// Items keep input order and numbering.
	text := doc.Text()
	assert.Less(t, strings.Index(text, "CHICKEN MOMO"), strings.Index(text, "COKE"))
}

func TestRenderBillTotalAlwaysPrinted(t *testing.T) {
	b := sampleBill()
	b.SubTotal = Adjustment{}
	b.ServiceCharge = Adjustment{}
	b.Total = 0

	text := New(Profile80).RenderBill(b).Text()
	assert.Contains(t, text, "TOTAL")
	assert.Contains(t, text, "Rs 0")
}

func TestRenderBillLocationOmitted(t *testing.T) {
	b := sampleBill()
	b.RestaurantLocation = ""
	lines := New(Profile80).RenderBill(b).Lines()

	// Name, then straight to the date: two lines before the first rule.
	require.True(t, lines[2].Rule)
	assert.Equal(t, "NEPDINE CAFE", lines[0].Text)
	assert.Equal(t, b.Date, lines[1].Text)

	b.RestaurantLocation = "Bhaktapur"
	lines = New(Profile80).RenderBill(b).Lines()
	require.True(t, lines[3].Rule)
	assert.Equal(t, "Bhaktapur", lines[1].Text)
}

func TestRenderBillAmountRounding(t *testing.T) {
	b := sampleBill()
	// 1260 paisa = Rs 12.60, displayed as 13; the input is untouched.
	b.Lines = []OrderLine{{Name: "tea", Quantity: 1, Rate: 1260, Amount: 1260}}

	doc := New(Profile80).RenderBill(b)

	var itemRow string
	for _, ln := range textLines(doc) {
		if strings.Contains(ln, "TEA") {
			itemRow = ln
		}
	}
	require.NotEmpty(t, itemRow)
	assert.True(t, strings.HasSuffix(itemRow, "13"))
	assert.EqualValues(t, 1260, b.Lines[0].Amount)
}

func TestRenderBillSequentialNumbering(t *testing.T) {
	b := sampleBill()
	b.Lines = []OrderLine{
		{Name: "zebra cake", Quantity: 1, Amount: 100},
		{Name: "apple pie", Quantity: 2, Amount: 200},
		{Name: "mango lassi", Quantity: 3, Amount: 300},
	}

	var firstRows []string
	for _, ln := range textLines(doc80(t, b)) {
		trimmed := strings.TrimLeft(ln, " ")
		if trimmed != ln {
			continue // continuation or aligned row, not a numbered first row
		}
		if len(ln) > 0 && ln[0] >= '1' && ln[0] <= '9' {
			firstRows = append(firstRows, ln)
		}
	}

	require.Len(t, firstRows, 3)
	assert.Contains(t, firstRows[0], "ZEBRA CAKE")
	assert.Contains(t, firstRows[1], "APPLE PIE")
	assert.Contains(t, firstRows[2], "MANGO LASSI")
	assert.Equal(t, byte('1'), firstRows[0][0])
	assert.Equal(t, byte('2'), firstRows[1][0])
	assert.Equal(t, byte('3'), firstRows[2][0])
}

func doc80(t *testing.T, b BillData) *Document {
	t.Helper()
	return New(Profile80).RenderBill(b)
}

func TestRenderBillWrapContinuationRows(t *testing.T) {
	longName := "extra spicy chicken tandoori momo platter with peanut achar and fresh coriander garnish"
	b := sampleBill()
	b.Lines = []OrderLine{{Name: longName, Quantity: 4, Amount: 99900}}

	e := New(Profile80)
	frags := wrap(strings.ToUpper(longName), Profile80.ItemWidth())
	require.GreaterOrEqual(t, len(frags), 3)

	lines := textLines(e.RenderBill(b))
	var itemRows []string
	for _, ln := range lines {
		for _, f := range frags {
			if strings.Contains(ln, f) {
				itemRows = append(itemRows, ln)
				break
			}
		}
	}
	require.Len(t, itemRows, len(frags))

	// Quantity and amount beside the first visual row only.
	assert.True(t, strings.HasPrefix(itemRows[0], "1"))
	assert.True(t, strings.HasSuffix(itemRows[0], "999"))
	assert.Contains(t, itemRows[0], " 4 ")
	for _, cont := range itemRows[1:] {
		assert.True(t, strings.HasPrefix(cont, strings.Repeat(" ", Profile80.NoWidth)))
		assert.Equal(t, strings.TrimSpace(cont), strings.TrimLeft(cont, " "),
			"continuation rows carry only wrapped name text")
	}
}

func TestEstimateHeightScalesWithContent(t *testing.T) {
	one := sampleBill()
	one.Lines = []OrderLine{{Name: "tea", Quantity: 1, Amount: 100}}

	twenty := sampleBill()
	twenty.Lines = nil
	for i := 0; i < 20; i++ {
		twenty.Lines = append(twenty.Lines, OrderLine{Name: "tea", Quantity: 1, Amount: 100})
	}

	e := New(Profile80)
	h1 := e.EstimateHeight(one)
	h20 := e.EstimateHeight(twenty)

	assert.Greater(t, h20, h1)
	assert.InDelta(t, 19*Profile80.LineHeight, h20-h1, 0.0001)
}

func TestEstimateHeightMatchesDocument(t *testing.T) {
	b := sampleBill()
	e := New(Profile80)
	assert.Equal(t, e.EstimateHeight(b), e.RenderBill(b).HeightMM())
}

func TestEstimateHeightCountsTotalsRows(t *testing.T) {
	b := sampleBill()
	e := New(Profile80)
	base := e.EstimateHeight(b)

	b.Tax = Amount(6500)
	assert.InDelta(t, Profile80.LineHeight, e.EstimateHeight(b)-base, 0.0001)
}

func TestRenderBillEmptyOrders(t *testing.T) {
	b := sampleBill()
	b.Lines = nil

	doc := New(Profile80).RenderBill(b)
	text := doc.Text()
	assert.Contains(t, text, "NEPDINE CAFE")
	assert.Contains(t, text, "THANK YOU!")
	assert.Contains(t, text, "TOTAL")
}

func TestItemColumnWidthClamped(t *testing.T) {
	p := Profile{Width: 10, NoWidth: 5, QtyWidth: 5, AmtWidth: 5}
	assert.Equal(t, 1, p.ItemWidth())
}
