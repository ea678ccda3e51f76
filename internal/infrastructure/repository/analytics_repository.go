package repository

import (
	"context"
	"errors"
	"time"

	domainRepo "github.com/nepdine/dinepos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ErrMissingTenant is returned when an aggregation query runs without a
// tenant in context. Raw SQL bypasses TenantScope so we refuse instead
// of leaking cross-tenant numbers.
var ErrMissingTenant = errors.New("analytics: no tenant in context")

func (r *analyticsRepository) GetWaiterPerformance(ctx context.Context, from, to time.Time) ([]domainRepo.WaiterPerformanceResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return nil, ErrMissingTenant
	}

	var results []domainRepo.WaiterPerformanceResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id as waiter_id,
			TRIM(u.first_name || ' ' || u.last_name) as waiter_name,
			COUNT(DISTINCT o.id) as order_count,
			COALESCE(SUM(oi.quantity), 0) as items_sold,
			COALESCE(SUM(oi.amount), 0) as revenue
		FROM orders o
		JOIN users u ON u.id = o.waiter_id
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.tenant_id = ?
		AND o.status != 3
		AND o.created_at >= ? AND o.created_at < ?
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY revenue DESC
	`, tenantID, from, to).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetTopItems(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return nil, ErrMissingTenant
	}

	var results []domainRepo.TopItemResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id,
			oi.name as item_name,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.amount), 0) as revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.tenant_id = ?
		AND o.status != 3
		AND o.created_at >= ? AND o.created_at < ?
		GROUP BY oi.menu_item_id, oi.name
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, tenantID, from, to, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return nil, ErrMissingTenant
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))

	var rows []domainRepo.DailySalesResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE_TRUNC('day', created_at) as date,
			COALESCE(SUM(total), 0) as revenue,
			COUNT(id) as bill_count
		FROM bills
		WHERE tenant_id = ? AND settled = true AND created_at >= ?
		GROUP BY DATE_TRUNC('day', created_at)
	`, tenantID, start).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]domainRepo.DailySalesResult, len(rows))
	for _, row := range rows {
		byDay[row.Date.Format("2006-01-02")] = row
	}

	// Fill in zero rows so charts always get a point per day
	results := make([]domainRepo.DailySalesResult, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		if row, ok := byDay[day.Format("2006-01-02")]; ok {
			row.Date = day
			results = append(results, row)
			continue
		}
		results = append(results, domainRepo.DailySalesResult{Date: day})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (int64, error) {
	tenantID, ok := GetTenantID(ctx)
	if !ok {
		return 0, ErrMissingTenant
	}

	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM bills
		WHERE tenant_id = ? AND settled = true
	`, tenantID).Scan(&revenue).Error

	return revenue, err
}
