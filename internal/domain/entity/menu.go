package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategory groups menu items for the menu admin screens
type MenuCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant     `gorm:"foreignKey:TenantID" json:"-"`
	Items  []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuCategory model
func (MenuCategory) TableName() string {
	return "menu_categories"
}

// MenuItem represents one orderable dish or drink
type MenuItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Slug       string         `gorm:"size:255;unique;not null" json:"slug"`
	Price      int64          `gorm:"default:0" json:"-"` // Stored in paisa, excluded from JSON
	Available  bool           `gorm:"default:true" json:"available"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant      Tenant        `gorm:"foreignKey:TenantID" json:"-"`
	Category    *MenuCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Ingredients []Ingredient  `gorm:"foreignKey:MenuItemID" json:"ingredients,omitempty"`
}

// MarshalJSON custom marshaler to convert paisa to decimal rupees for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// SetPriceFromDecimal sets the price from a decimal rupee value
func (m *MenuItem) SetPriceFromDecimal(price float64) {
	m.Price = int64(price * 100)
}

// GetPriceDecimal returns the price as decimal rupees (for display)
func (m *MenuItem) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// Ingredient is a component of a menu item, shown when taking orders
// so waiters can mark exclusions ("no onion")
type Ingredient struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Removable  bool           `gorm:"default:true" json:"removable"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	MenuItem MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ingredient
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}
