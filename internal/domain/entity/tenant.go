package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Tenant represents one restaurant in the multitenant system
type Tenant struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	Name            string                `gorm:"size:255;not null" json:"name"`
	Slug            string                `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID         uuid.UUID             `gorm:"type:uuid;not null;index" json:"owner_id"`
	Plan            enum.SubscriptionPlan `gorm:"default:0" json:"plan"`
	SubscribedUntil *time.Time            `json:"subscribed_until,omitempty"`
	Settings        TenantSettings        `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	DeletedAt       gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Owner   User               `gorm:"foreignKey:OwnerID" json:"-"`
	Members []TenantMembership `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new tenant
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// SubscriptionActive reports whether the tenant's subscription covers now.
// Free-plan tenants are always active.
func (t *Tenant) SubscriptionActive() bool {
	if t.Plan == enum.PlanFree {
		return true
	}
	return t.SubscribedUntil != nil && t.SubscribedUntil.After(time.Now())
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// TenantMembership represents a user's membership in a tenant
type TenantMembership struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'waiter'" json:"role"` // owner, manager, waiter, kitchen
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (tm *TenantMembership) PopulateUserDetails() {
	if tm.User.ID != uuid.Nil {
		tm.MemberUser = &MemberUser{
			ID:        tm.User.ID,
			FirstName: tm.User.FirstName,
			LastName:  tm.User.LastName,
			Email:     tm.User.Email,
		}
	}
}

// TableName returns the table name for the TenantMembership model
func (TenantMembership) TableName() string {
	return "tenant_memberships"
}

// TenantSettings holds per-restaurant configuration
type TenantSettings struct {
	// Printed on receipts and KOTs
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// Localization
	Currency   string `json:"currency,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	DateFormat string `json:"date_format,omitempty"`

	// Billing defaults, applied when the cashier does not override them
	VATPercent           float64 `json:"vat_percent,omitempty"`
	ServiceChargePercent float64 `json:"service_charge_percent,omitempty"`

	// Printing
	PrinterProfile string `json:"printer_profile,omitempty"` // "80mm" or "58mm"

	// Feature flags, toggled by the superadmin per subscription
	Features TenantFeatures `json:"features,omitempty"`
}

// Scan implements the sql.Scanner interface for TenantSettings
func (ts *TenantSettings) Scan(value interface{}) error {
	if value == nil {
		*ts = TenantSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan TenantSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ts)
}

// Value implements the driver.Valuer interface for TenantSettings
func (ts TenantSettings) Value() (driver.Value, error) {
	return json.Marshal(ts)
}

// TenantFeatures holds feature flags for a tenant
type TenantFeatures struct {
	EnableKOT           bool `json:"kot"`
	EnableWaiterReports bool `json:"waiter_reports"`
	EnableEmailReceipts bool `json:"email_receipts"`
	EnableMultiUser     bool `json:"multi_user"`
	EnableAPIAccess     bool `json:"api_access"`
}

// DefaultTenantSettings returns default settings for new tenants
func DefaultTenantSettings() TenantSettings {
	return TenantSettings{
		Currency:             "NPR",
		Timezone:             "Asia/Kathmandu",
		DateFormat:           "DD/MM/YYYY",
		VATPercent:           13.0,
		ServiceChargePercent: 10.0,
		PrinterProfile:       "80mm",
		Features: TenantFeatures{
			EnableKOT:           true,
			EnableWaiterReports: true,
			EnableEmailReceipts: false,
			EnableMultiUser:     true,
			EnableAPIAccess:     false,
		},
	}
}
