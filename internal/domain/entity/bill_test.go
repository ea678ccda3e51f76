package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillMarshalJSONConvertsPaisa(t *testing.T) {
	discount := int64(5000)
	tax := int64(12350)
	bill := Bill{
		BillNo:        "BILL-20260315-001",
		SubTotal:      100000,
		Discount:      &discount,
		Tax:           &tax,
		Total:         107350,
		PaymentMethod: "cash",
	}

	data, err := json.Marshal(bill)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 1000.0, out["sub_total"])
	assert.Equal(t, 50.0, out["discount"])
	assert.Equal(t, 123.5, out["tax"])
	assert.Equal(t, 1073.5, out["total"])
}

func TestBillMarshalJSONOmitsUnappliedAdjustments(t *testing.T) {
	bill := Bill{
		BillNo:   "BILL-20260315-002",
		SubTotal: 50000,
		Total:    50000,
	}

	data, err := json.Marshal(bill)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	_, hasDiscount := out["discount"]
	_, hasService := out["service_charge"]
	_, hasTax := out["tax"]
	assert.False(t, hasDiscount)
	assert.False(t, hasService)
	assert.False(t, hasTax)
}

func TestBillMarshalJSONKeepsZeroAdjustment(t *testing.T) {
	// Applied at zero is different from not applied
	zero := int64(0)
	bill := Bill{
		BillNo:   "BILL-20260315-003",
		SubTotal: 50000,
		Discount: &zero,
		Total:    50000,
	}

	data, err := json.Marshal(bill)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	v, hasDiscount := out["discount"]
	assert.True(t, hasDiscount)
	assert.Equal(t, 0.0, v)
}
