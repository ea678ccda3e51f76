package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is one round of items sent to the kitchen for a group. A group
// accumulates orders until checkout; each order gets its own KOT.
type Order struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	GroupID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"group_id"`
	WaiterID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"waiter_id"`
	KOTNo     string           `gorm:"size:100;unique;not null" json:"kot_no"`
	Status    enum.OrderStatus `gorm:"default:0" json:"status"`
	SubTotal  int64            `gorm:"default:0" json:"-"` // Stored in paisa, excluded from JSON
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant      `gorm:"foreignKey:TenantID" json:"-"`
	Group  Group       `gorm:"foreignKey:GroupID" json:"-"`
	Waiter User        `gorm:"foreignKey:WaiterID" json:"waiter,omitempty"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert paisa to decimal rupees for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
	}{
		Alias:    Alias(o),
		SubTotal: float64(o.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item on an order. Name and Rate are snapshots of
// the menu item at order time, so later menu edits don't rewrite
// history or printed bills.
type OrderItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	Rate       int64          `gorm:"not null" json:"-"` // Stored in paisa, excluded from JSON
	Amount     int64          `gorm:"not null" json:"-"` // Stored in paisa, excluded from JSON
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order    Order    `gorm:"foreignKey:OrderID" json:"-"`
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

// MarshalJSON custom marshaler to convert paisa to decimal rupees for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Rate   float64 `json:"rate"`
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(oi),
		Rate:   float64(oi.Rate) / 100,
		Amount: float64(oi.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
