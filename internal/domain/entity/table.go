package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DiningTable represents a physical table on the floor. Numbers are
// sequential per tenant; deleting a table renumbers the ones after it.
type DiningTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Number    int            `gorm:"not null" json:"number"`
	Capacity  int            `gorm:"default:4" json:"capacity"`
	GroupID   *uuid.UUID     `gorm:"type:uuid;index" json:"group_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Group  *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiningTable model
func (DiningTable) TableName() string {
	return "dining_tables"
}

// Occupied reports whether the table is currently claimed by a group
func (t *DiningTable) Occupied() bool {
	return t.GroupID != nil
}

// Group is a seating/billing unit: one or more tables seated together,
// accumulating orders until checkout
type Group struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string           `gorm:"size:100" json:"name"`
	Status    enum.GroupStatus `gorm:"default:0" json:"status"`
	OpenedAt  time.Time        `gorm:"not null" json:"opened_at"`
	ClosedAt  *time.Time       `json:"closed_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant        `gorm:"foreignKey:TenantID" json:"-"`
	Tables []DiningTable `gorm:"foreignKey:GroupID" json:"tables,omitempty"`
	Orders []Order       `gorm:"foreignKey:GroupID" json:"orders,omitempty"`
}

// BeforeCreate generates a UUID before creating a new group
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Group model
func (Group) TableName() string {
	return "seating_groups"
}
