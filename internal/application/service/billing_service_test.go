package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOfRoundsToWholePaisa(t *testing.T) {
	// 13% of 12345 paisa = 1604.85, rounds to 1605
	assert.Equal(t, int64(1605), percentOf(12345, 13))

	// 10% of 50000 paisa
	assert.Equal(t, int64(5000), percentOf(50000, 10))

	// Zero percent and zero amount
	assert.Equal(t, int64(0), percentOf(50000, 0))
	assert.Equal(t, int64(0), percentOf(0, 13))
}

func TestChargeStacking(t *testing.T) {
	// Discount off the subtotal, service on the discounted base,
	// VAT on base plus service.
	subTotal := int64(100000) // Rs 1000.00

	discount := percentOf(subTotal, 10)
	base := subTotal - discount
	service := percentOf(base, 10)
	tax := percentOf(base+service, 13)
	total := base + service + tax

	assert.Equal(t, int64(10000), discount)
	assert.Equal(t, int64(90000), base)
	assert.Equal(t, int64(9000), service)
	assert.Equal(t, int64(12870), tax) // 13% of 99000
	assert.Equal(t, int64(111870), total)
}

func TestChargeStackingNoAdjustments(t *testing.T) {
	subTotal := int64(47500)

	base := subTotal - percentOf(subTotal, 0)
	service := percentOf(base, 0)
	tax := percentOf(base+service, 0)

	assert.Equal(t, subTotal, base+service+tax)
}
