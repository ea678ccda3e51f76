package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is the checkout record for a group. All money fields are paisa.
// Discount, ServiceCharge and Tax are nullable so a bill can record
// "not applied" separately from "applied at zero".
type Bill struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	GroupID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"group_id"`
	BillNo        string         `gorm:"size:100;unique;not null" json:"bill_no"`
	SubTotal      int64          `gorm:"not null" json:"-"` // Stored in paisa, excluded from JSON
	Discount      *int64         `json:"-"`                 // Stored in paisa, excluded from JSON
	ServiceCharge *int64         `json:"-"`                 // Stored in paisa, excluded from JSON
	Tax           *int64         `json:"-"`                 // Stored in paisa, excluded from JSON
	Total         int64          `gorm:"not null" json:"-"` // Stored in paisa, excluded from JSON
	PaymentMethod string         `gorm:"size:50" json:"payment_method,omitempty"` // cash, card, qr
	Settled       bool           `gorm:"default:false" json:"settled"`
	SettledAt     *time.Time     `json:"settled_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Group  Group  `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// MarshalJSON custom marshaler to convert paisa to decimal rupees for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	toDecimal := func(paisa *int64) *float64 {
		if paisa == nil {
			return nil
		}
		v := float64(*paisa) / 100
		return &v
	}
	return json.Marshal(&struct {
		Alias
		SubTotal      float64  `json:"sub_total"`
		Discount      *float64 `json:"discount,omitempty"`
		ServiceCharge *float64 `json:"service_charge,omitempty"`
		Tax           *float64 `json:"tax,omitempty"`
		Total         float64  `json:"total"`
	}{
		Alias:         Alias(b),
		SubTotal:      float64(b.SubTotal) / 100,
		Discount:      toDecimal(b.Discount),
		ServiceCharge: toDecimal(b.ServiceCharge),
		Tax:           toDecimal(b.Tax),
		Total:         float64(b.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
