package pharmaclient

import (
	"context"
	"net/url"
	"strconv"

	pharmadomain "github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma/domain"
)

func (c *PharmaClient) ListSales(ctx context.Context, startDate, endDate string) ([]pharmadomain.Sale, error) {
	filters := url.Values{}
	filters.Set("start_date", startDate)
	filters.Set("end_date", endDate)
	filters.Set("ordering", "created_at")

	raw, err := c.fetchAllPages(ctx, "sales", filters)
	if err != nil {
		return nil, err
	}

	return decodeRecords[pharmadomain.Sale](raw)
}

func (c *PharmaClient) ListSaleItems(ctx context.Context, startDate, endDate string) ([]pharmadomain.SaleItem, error) {
	filters := url.Values{}
	filters.Set("start_date", startDate)
	filters.Set("end_date", endDate)

	raw, err := c.fetchAllPages(ctx, "sale-items", filters)
	if err != nil {
		return nil, err
	}

	return decodeRecords[pharmadomain.SaleItem](raw)
}

func (c *PharmaClient) ListProducts(ctx context.Context) ([]pharmadomain.Product, error) {
	filters := url.Values{}
	filters.Set("scope", "all")

	raw, err := c.fetchAllPages(ctx, "products", filters)
	if err != nil {
		return nil, err
	}

	return decodeRecords[pharmadomain.Product](raw)
}

func (c *PharmaClient) ListPatients(ctx context.Context) ([]pharmadomain.Patient, error) {
	raw, err := c.fetchAllPages(ctx, "patients", url.Values{})
	if err != nil {
		return nil, err
	}

	return decodeRecords[pharmadomain.Patient](raw)
}

func (c *PharmaClient) GetDailyTrend(ctx context.Context, days int) ([]pharmadomain.DailyTrendEntry, error) {
	filters := url.Values{}
	filters.Set("days", strconv.Itoa(days))

	raw, err := c.fetchAllPages(ctx, "reports/daily-trend", filters)
	if err != nil {
		return nil, err
	}

	return decodeRecords[pharmadomain.DailyTrendEntry](raw)
}

func (c *PharmaClient) GetTodayRevenue(ctx context.Context) (*pharmadomain.TodayRevenue, error) {
	today := &pharmadomain.TodayRevenue{}
	if err := c.getObject(ctx, "reports/today", url.Values{}, today); err != nil {
		return nil, err
	}

	return today, nil
}

func (c *PharmaClient) GetInventoryStats(ctx context.Context) (*pharmadomain.InventoryStats, error) {
	stats := &pharmadomain.InventoryStats{}
	if err := c.getObject(ctx, "inventory/stats", url.Values{}, stats); err != nil {
		return nil, err
	}

	return stats, nil
}
