package service

import (
	"context"
	"time"

	"github.com/nepdine/dinepos-api/internal/domain/enum"
	"github.com/nepdine/dinepos-api/internal/domain/repository"
	infraRepo "github.com/nepdine/dinepos-api/internal/infrastructure/repository"
	"github.com/nepdine/dinepos-api/pkg/apperror"
)

// DashboardService provides dashboard statistics and reports
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	tableRepo     repository.TableRepository
	groupRepo     repository.GroupRepository
	tenantRepo    repository.TenantRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	tableRepo repository.TableRepository,
	groupRepo repository.GroupRepository,
	tenantRepo repository.TenantRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		tableRepo:     tableRepo,
		groupRepo:     groupRepo,
		tenantRepo:    tenantRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalTables    int64             `json:"total_tables"`
	OccupiedTables int64             `json:"occupied_tables"`
	OpenGroups     int64             `json:"open_groups"`
	TotalRevenue   float64           `json:"total_revenue"`
	TodayRevenue   float64           `json:"today_revenue"`
	TodayBills     int               `json:"today_bills"`
	DailySalesData []DailySalesPoint `json:"daily_sales_data"`
	TopItems       []TopItemPoint    `json:"top_items"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	BillCount int     `json:"bill_count"`
}

// TopItemPoint represents a top selling menu item
type TopItemPoint struct {
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// GetDashboardStats returns dashboard statistics for the tenant
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalTables = int64(len(tables))
	for _, t := range tables {
		if t.Occupied() {
			stats.OccupiedTables++
		}
	}

	openStatus := enum.GroupStatusOpen
	groups, err := s.groupRepo.List(ctx, &openStatus)
	if err != nil {
		return nil, err
	}
	stats.OpenGroups = int64(len(groups))

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(totalRevenue) / 100

	daily, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = make([]DailySalesPoint, 0, len(daily))
	for _, d := range daily {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:      d.Date.Format("Jan 02"),
			Revenue:   float64(d.Revenue) / 100,
			BillCount: d.BillCount,
		})
	}
	if n := len(daily); n > 0 {
		stats.TodayRevenue = float64(daily[n-1].Revenue) / 100
		stats.TodayBills = daily[n-1].BillCount
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	topItems, err := s.analyticsRepo.GetTopItems(ctx, weekAgo, now, 5)
	if err != nil {
		return nil, err
	}
	stats.TopItems = make([]TopItemPoint, 0, len(topItems))
	for _, item := range topItems {
		stats.TopItems = append(stats.TopItems, TopItemPoint{
			Name:         item.ItemName,
			QuantitySold: item.QuantitySold,
			Revenue:      float64(item.Revenue) / 100,
		})
	}

	return stats, nil
}

// WaiterReport represents one waiter's performance over a period
type WaiterReport struct {
	WaiterID   string  `json:"waiter_id"`
	WaiterName string  `json:"waiter_name"`
	OrderCount int     `json:"order_count"`
	ItemsSold  int     `json:"items_sold"`
	Revenue    float64 `json:"revenue"`
}

// GetWaiterPerformance returns per-waiter performance between two
// instants. Gated by the waiter-reports feature flag.
func (s *DashboardService) GetWaiterPerformance(ctx context.Context, from, to time.Time) ([]WaiterReport, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	if !tenant.Settings.Features.EnableWaiterReports {
		return nil, apperror.ErrForbidden
	}

	if !to.After(from) {
		return nil, apperror.NewBadRequestError("Invalid date range")
	}

	rows, err := s.analyticsRepo.GetWaiterPerformance(ctx, from, to)
	if err != nil {
		return nil, err
	}

	reports := make([]WaiterReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, WaiterReport{
			WaiterID:   row.WaiterID.String(),
			WaiterName: row.WaiterName,
			OrderCount: row.OrderCount,
			ItemsSold:  row.ItemsSold,
			Revenue:    float64(row.Revenue) / 100,
		})
	}

	return reports, nil
}
