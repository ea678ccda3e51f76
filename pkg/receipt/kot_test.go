package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTicket() KitchenTicket {
	return KitchenTicket{
		RestaurantName: "NEPDINE CAFE",
		KOTNo:          "KOT-0042",
		GroupName:      "Group 3 / Table 5",
		Date:           "01/01/2024 12:05",
		Items: []TicketItem{
			{Name: "chicken momo", Quantity: 2, Notes: "less spicy"},
			{Name: "veg chowmein", Quantity: 1},
		},
	}
}

func TestRenderTicketNoPrices(t *testing.T) {
	text := New(Profile80).RenderTicket(sampleTicket()).Text()

	assert.Contains(t, text, "KOT KOT-0042")
	assert.Contains(t, text, "CHICKEN MOMO")
	assert.Contains(t, text, "x2")
	assert.Contains(t, text, "less spicy")
	assert.NotContains(t, text, "Rs ")
	assert.NotContains(t, text, "TOTAL")
}

func TestRenderTicketHeightScales(t *testing.T) {
	small := sampleTicket()
	big := sampleTicket()
	for i := 0; i < 10; i++ {
		big.Items = append(big.Items, TicketItem{Name: "sel roti", Quantity: 1})
	}

	e := New(Profile58)
	assert.Greater(t, e.EstimateTicketHeight(big), e.EstimateTicketHeight(small))
	require.Equal(t, e.EstimateTicketHeight(big), e.RenderTicket(big).HeightMM())
}

func TestRenderTicketGroupLineOptional(t *testing.T) {
	tk := sampleTicket()
	tk.GroupName = ""
	lines := New(Profile80).RenderTicket(tk).Lines()
	require.True(t, lines[3].Rule)
	assert.Equal(t, tk.Date, lines[2].Text)
}

func TestDocumentESCPOSEndsWithCut(t *testing.T) {
	raw := New(Profile58).RenderTicket(sampleTicket()).ESCPOS()
	require.NotEmpty(t, raw)
	// GS V 1 partial cut trailer
	assert.Equal(t, []byte{0x1D, 'V', 0x01}, raw[len(raw)-3:])
	assert.True(t, strings.HasPrefix(string(raw), string([]byte{0x1B, '@'})))
}
