package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKOTNo(t *testing.T) {
	date := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "KOT-20260315-001", GenerateKOTNo(date, 1))
	assert.Equal(t, "KOT-20260315-042", GenerateKOTNo(date, 42))
	assert.Equal(t, "KOT-20260315-1000", GenerateKOTNo(date, 1000))
}

func TestGenerateBillNo(t *testing.T) {
	date := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "BILL-20260102-001", GenerateBillNo(date, 1))
	assert.Equal(t, "BILL-20260102-099", GenerateBillNo(date, 99))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "chicken-momo", Slugify("Chicken Momo"))
	assert.Equal(t, "veg-thali-set", Slugify("  Veg  Thali Set  "))
	assert.Equal(t, "coke-500ml", Slugify("Coke (500ml)"))
}
