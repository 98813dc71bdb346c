package pharma

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma/pharmaclient"
	"github.com/vfg2006/pharmacy-analytics-api/internal/config"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

// PharmaIntegrator expõe os dados do backend já convertidos para o domínio,
// com a coerção numérica aplicada na borda para os redutores nunca lidarem
// com campos ausentes.
type PharmaIntegrator interface {
	FetchSales(ctx context.Context, window domain.TimeWindow) ([]domain.SaleRecord, error)
	FetchSaleItems(ctx context.Context, window domain.TimeWindow) ([]domain.SaleItemRecord, error)
	FetchProducts(ctx context.Context) ([]domain.ProductRecord, error)
	FetchPatients(ctx context.Context) ([]domain.PatientRecord, error)
	FetchDailyTrend(ctx context.Context, days int) ([]domain.DailyRevenue, error)
	FetchTodayRevenue(ctx context.Context) (float64, error)
	FetchInventoryStats(ctx context.Context) (*domain.InventoryStats, error)
}

type PharmaService struct {
	cfg    *config.Config
	Client pharmaclient.Client
}

func New(cfg *config.Config, client pharmaclient.Client) PharmaIntegrator {
	return &PharmaService{
		cfg:    cfg,
		Client: client,
	}
}

// Layouts de data aceitos nos payloads do backend, do mais ao menos específico.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseRecordTime(value string) time.Time {
	for _, layout := range createdAtLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

func (s *PharmaService) FetchSales(ctx context.Context, window domain.TimeWindow) ([]domain.SaleRecord, error) {
	payloads, err := s.Client.ListSales(ctx, window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	sales := make([]domain.SaleRecord, 0, len(payloads))
	for _, payload := range payloads {
		createdAt := parseRecordTime(payload.CreatedAt)
		if createdAt.IsZero() {
			logrus.WithFields(logrus.Fields{
				"sale_id":    string(payload.ID),
				"created_at": payload.CreatedAt,
			}).Debug("Venda com data inválida ignorada na conversão")
			continue
		}

		var customer *string
		if payload.Customer != nil && *payload.Customer != "" {
			id := string(*payload.Customer)
			customer = &id
		}

		sales = append(sales, domain.SaleRecord{
			ID:          string(payload.ID),
			CreatedAt:   createdAt,
			TotalAmount: float64(payload.TotalAmount),
			TaxAmount:   float64(payload.TaxAmount),
			Customer:    customer,
		})
	}

	return sales, nil
}

func (s *PharmaService) FetchSaleItems(ctx context.Context, window domain.TimeWindow) ([]domain.SaleItemRecord, error) {
	payloads, err := s.Client.ListSaleItems(ctx, window.Start.Format(time.DateOnly), window.End.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}

	items := make([]domain.SaleItemRecord, 0, len(payloads))
	for _, payload := range payloads {
		items = append(items, domain.SaleItemRecord{
			Sale:        string(payload.Sale),
			Product:     string(payload.Product),
			ProductName: payload.ProductName,
			Quantity:    int(payload.Quantity),
			UnitCost:    float64(payload.UnitCost),
			LineTotal:   float64(payload.LineTotal),
		})
	}

	return items, nil
}

func (s *PharmaService) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	payloads, err := s.Client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductRecord, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, domain.ProductRecord{
			ID:            string(payload.ID),
			Name:          payload.Name,
			Category:      payload.Category,
			IsActive:      payload.IsActive,
			MinStockLevel: int(payload.MinStockLevel),
		})
	}

	return products, nil
}

func (s *PharmaService) FetchPatients(ctx context.Context) ([]domain.PatientRecord, error) {
	payloads, err := s.Client.ListPatients(ctx)
	if err != nil {
		return nil, err
	}

	patients := make([]domain.PatientRecord, 0, len(payloads))
	for _, payload := range payloads {
		patients = append(patients, domain.PatientRecord{
			ID:       string(payload.ID),
			Name:     payload.Name,
			IsActive: payload.IsActive,
		})
	}

	return patients, nil
}

func (s *PharmaService) FetchDailyTrend(ctx context.Context, days int) ([]domain.DailyRevenue, error) {
	payloads, err := s.Client.GetDailyTrend(ctx, days)
	if err != nil {
		return nil, err
	}

	trend := make([]domain.DailyRevenue, 0, len(payloads))
	for _, payload := range payloads {
		date := parseRecordTime(payload.Date)
		if date.IsZero() {
			continue
		}

		trend = append(trend, domain.DailyRevenue{
			Date:    date,
			Revenue: float64(payload.Revenue),
			Count:   int(payload.Count),
		})
	}

	return trend, nil
}

func (s *PharmaService) FetchTodayRevenue(ctx context.Context) (float64, error) {
	today, err := s.Client.GetTodayRevenue(ctx)
	if err != nil {
		return 0, err
	}

	return float64(today.Revenue), nil
}

func (s *PharmaService) FetchInventoryStats(ctx context.Context) (*domain.InventoryStats, error) {
	stats, err := s.Client.GetInventoryStats(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.InventoryStats{
		TotalProducts:   int(stats.TotalProducts),
		InStockCount:    int(stats.InStockCount),
		LowStockCount:   int(stats.LowStockCount),
		OutOfStockCount: int(stats.OutOfStockCount),
	}, nil
}
