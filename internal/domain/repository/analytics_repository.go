package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WaiterPerformanceResult represents a waiter's sales performance
type WaiterPerformanceResult struct {
	WaiterID   uuid.UUID
	WaiterName string
	OrderCount int
	ItemsSold  int
	Revenue    int64 // paisa
}

// TopItemResult represents a menu item's sales performance
type TopItemResult struct {
	MenuItemID   uuid.UUID
	ItemName     string
	QuantitySold int
	Revenue      int64 // paisa
}

// DailySalesResult represents billed sales for a single day
type DailySalesResult struct {
	Date      time.Time
	Revenue   int64 // paisa
	BillCount int
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetWaiterPerformance returns per-waiter order counts and revenue
	// between two instants
	GetWaiterPerformance(ctx context.Context, from, to time.Time) ([]WaiterPerformanceResult, error)

	// GetTopItems returns top selling menu items by quantity
	GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]TopItemResult, error)

	// GetDailySales returns settled bill totals for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total revenue from settled bills
	GetTotalRevenue(ctx context.Context) (int64, error)
}
