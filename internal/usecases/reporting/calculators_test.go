package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		baseline float64
		expected float64
	}{
		{"crescimento sobre base positiva", 150, 100, 50},
		{"queda sobre base positiva", 50, 100, -50},
		{"base zero com valor positivo é 100%", 10, 0, 100},
		{"base zero com valor zero é 0%", 0, 0, 0},
		{"variação fracionária arredondada", 100.5, 99, 1.52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.current, tt.baseline))
		})
	}
}

func TestFilterSales(t *testing.T) {
	window := domain.TimeWindow{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
	}

	sales := []domain.SaleRecord{
		{ID: "S1", CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "S2", CreatedAt: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)},
		{ID: "S3", CreatedAt: time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)},
		{ID: "S4", CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	filtered := FilterSales(sales, window)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "S1", filtered[0].ID)
	assert.Equal(t, "S2", filtered[1].ID)
}

func TestFilterItemsBySales(t *testing.T) {
	sales := []domain.SaleRecord{{ID: "S1"}, {ID: "S2"}}

	items := []domain.SaleItemRecord{
		{Sale: "S1", Product: "P1"},
		{Sale: "S9", Product: "P2"}, // venda fora da janela
		{Sale: "S2", Product: "P3"},
		{Sale: "", Product: "P4"}, // item órfão
	}

	filtered := FilterItemsBySales(items, sales)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "P1", filtered[0].Product)
	assert.Equal(t, "P3", filtered[1].Product)
}

func TestCalculateOverview(t *testing.T) {
	sales := []domain.SaleRecord{
		{ID: "S1", TotalAmount: 100, Customer: stringPtr("C1")},
		{ID: "S2", TotalAmount: 200, Customer: stringPtr("C1")},
		{ID: "S3", TotalAmount: 300, Customer: stringPtr("C2")},
		{ID: "S4", TotalAmount: 400}, // venda de balcão sem cliente
	}

	overview := CalculateOverview(sales, 500, 0.72)

	assert.Equal(t, 1000.0, overview.TotalRevenue)
	assert.Equal(t, 280.0, overview.TotalProfit)
	assert.Equal(t, 4, overview.TotalSales)
	assert.Equal(t, 2, overview.TotalCustomers)
	assert.Equal(t, 250.0, overview.AvgOrderValue)
	assert.Equal(t, 28.0, overview.ProfitMargin)
	assert.Equal(t, 100.0, overview.GrowthRate)
}

func TestCalculateOverviewSemVendas(t *testing.T) {
	overview := CalculateOverview(nil, 0, 0.72)

	assert.Equal(t, 0.0, overview.TotalRevenue)
	assert.Equal(t, 0.0, overview.AvgOrderValue)
	assert.Equal(t, 0.0, overview.ProfitMargin)
	assert.Equal(t, 0.0, overview.GrowthRate)
}

func TestRankProducts(t *testing.T) {
	products := map[string]domain.ProductRecord{
		"P1": {ID: "P1", Name: "Dipirona 500mg", Category: "Analgésicos"},
		"P2": {ID: "P2", Name: "Vitamina C"},
	}

	items := []domain.SaleItemRecord{
		{Sale: "S1", Product: "P1", Quantity: 2, UnitCost: 10, LineTotal: 60},
		{Sale: "S2", Product: "P2", ProductName: "Vitamina C 1g", Quantity: 4, UnitCost: 5, LineTotal: 100},
		{Sale: "S3", Product: "P1", Quantity: 1, UnitCost: 10, LineTotal: 40},
		{Sale: "S4", Product: "P9", Quantity: 1, UnitCost: 1, LineTotal: 5},
	}

	ranked := RankProducts(items, products, 10)

	assert.Len(t, ranked, 3)

	// P1 e P2 empatam em 100 de receita; a ordem de chegada é preservada
	assert.Equal(t, "P1", ranked[0].ID)
	assert.Equal(t, "Dipirona 500mg", ranked[0].Name)
	assert.Equal(t, "Analgésicos", ranked[0].Category)
	assert.Equal(t, 3, ranked[0].QuantitySold)
	assert.Equal(t, 100.0, ranked[0].Revenue)
	assert.Equal(t, 70.0, ranked[0].Profit)
	assert.Equal(t, 0.7, ranked[0].Margin)

	// O nome do payload do item prevalece sobre o cadastro
	assert.Equal(t, "P2", ranked[1].ID)
	assert.Equal(t, "Vitamina C 1g", ranked[1].Name)
	assert.Equal(t, domain.DefaultCategory, ranked[1].Category)
	assert.Equal(t, 80.0, ranked[1].Profit)
	assert.Equal(t, 0.8, ranked[1].Margin)

	// Produto fora do cadastro entra com categoria padrão
	assert.Equal(t, "P9", ranked[2].ID)
	assert.Equal(t, domain.DefaultCategory, ranked[2].Category)
}

func TestRankProductsRespectsLimit(t *testing.T) {
	items := make([]domain.SaleItemRecord, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, domain.SaleItemRecord{
			Sale:      "S1",
			Product:   string(rune('A' + i)),
			Quantity:  1,
			LineTotal: float64(100 - i),
		})
	}

	ranked := RankProducts(items, nil, 10)

	assert.Len(t, ranked, 10)
	assert.Equal(t, 100.0, ranked[0].Revenue)
	assert.Equal(t, 91.0, ranked[9].Revenue)
}

func TestCalculateFinancialSummary(t *testing.T) {
	sales := []domain.SaleRecord{
		{ID: "S1", TotalAmount: 200, TaxAmount: 12},
		{ID: "S2", TotalAmount: 100, TaxAmount: 6},
	}

	items := []domain.SaleItemRecord{
		{Sale: "S1", Quantity: 2, UnitCost: 30},
		{Sale: "S2", Quantity: 1, UnitCost: 40},
	}

	summary := CalculateFinancialSummary(sales, items, 0.10)

	assert.Equal(t, 300.0, summary.GrossRevenue)
	assert.Equal(t, 100.0, summary.TotalCosts)
	assert.Equal(t, 200.0, summary.NetProfit)
	assert.Equal(t, 18.0, summary.TaxAmount)
	assert.Equal(t, 20.0, summary.Expenses)
	assert.Equal(t, 66.67, summary.ProfitMargin)
}

func TestCalculateFinancialSummaryComPrejuizo(t *testing.T) {
	sales := []domain.SaleRecord{{ID: "S1", TotalAmount: 50}}
	items := []domain.SaleItemRecord{{Sale: "S1", Quantity: 1, UnitCost: 80}}

	summary := CalculateFinancialSummary(sales, items, 0.10)

	assert.Equal(t, -30.0, summary.NetProfit)
	// Prejuízo não gera despesas operacionais projetadas
	assert.Equal(t, 0.0, summary.Expenses)
}

func TestCalculateCustomerMetrics(t *testing.T) {
	sales := []domain.SaleRecord{
		{ID: "S1", TotalAmount: 100, Customer: stringPtr("C1")},
		{ID: "S2", TotalAmount: 50, Customer: stringPtr("C1")},
		{ID: "S3", TotalAmount: 30, Customer: stringPtr("C2")},
		{ID: "S4", TotalAmount: 20},
	}

	metrics := CalculateCustomerMetrics(sales, 120)

	assert.Equal(t, 2, metrics.TotalCustomers)
	assert.Equal(t, 1, metrics.ReturningCustomers)
	assert.Equal(t, 1, metrics.NewCustomers)
	assert.Equal(t, 50.0, metrics.RetentionRate)
	assert.Equal(t, 2.0, metrics.AvgOrdersPerCustomer)
	assert.Equal(t, 100.0, metrics.AvgSpentPerCustomer)
	assert.Equal(t, 120, metrics.TotalPatients)
}

func TestCalculateCustomerMetricsSemClientes(t *testing.T) {
	sales := []domain.SaleRecord{{ID: "S1", TotalAmount: 100}}

	metrics := CalculateCustomerMetrics(sales, 0)

	assert.Equal(t, 0, metrics.TotalCustomers)
	assert.Equal(t, 0.0, metrics.RetentionRate)
	assert.Equal(t, 0.0, metrics.AvgOrdersPerCustomer)
	assert.Equal(t, 0.0, metrics.AvgSpentPerCustomer)
}

func TestCalculateProductAnalytics(t *testing.T) {
	products := map[string]domain.ProductRecord{
		"P1": {ID: "P1", Name: "Dipirona", Category: "Analgésicos"},
		"P2": {ID: "P2", Name: "Amoxicilina", Category: "Antibióticos"},
		"P3": {ID: "P3", Name: "Curativo"},
	}

	items := []domain.SaleItemRecord{
		{Sale: "S1", Product: "P1", Quantity: 2, UnitCost: 10, LineTotal: 60},
		{Sale: "S1", Product: "P2", Quantity: 1, UnitCost: 50, LineTotal: 100},
		{Sale: "S2", Product: "P3", Quantity: 3, UnitCost: 5, LineTotal: 40},
	}

	ranked := RankProducts(items, products, 10)
	inventory := domain.InventoryStats{TotalProducts: 3, InStockCount: 2, LowStockCount: 1}

	analytics := CalculateProductAnalytics(items, products, ranked, inventory)

	assert.Len(t, analytics.Categories, 3)

	// Categorias ordenadas por receita decrescente
	assert.Equal(t, "Antibióticos", analytics.Categories[0].Category)
	assert.Equal(t, 100.0, analytics.Categories[0].Revenue)
	assert.Equal(t, 50.0, analytics.Categories[0].Percentage)

	assert.Equal(t, "Analgésicos", analytics.Categories[1].Category)
	assert.Equal(t, 30.0, analytics.Categories[1].Percentage)

	// Produto sem categoria cai na categoria padrão
	assert.Equal(t, domain.DefaultCategory, analytics.Categories[2].Category)
	assert.Equal(t, 20.0, analytics.Categories[2].Percentage)

	assert.Len(t, analytics.TopPerformers, 3)
	assert.Equal(t, ranked[0].ID, analytics.TopPerformers[0].ID)

	// SlowMovers invertidos: o pior desempenho vem primeiro
	assert.Len(t, analytics.SlowMovers, 3)
	assert.Equal(t, ranked[len(ranked)-1].ID, analytics.SlowMovers[0].ID)

	assert.Equal(t, inventory, analytics.Inventory)
}

func TestCalculateProductAnalyticsExtremesOfLargerRanking(t *testing.T) {
	items := make([]domain.SaleItemRecord, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, domain.SaleItemRecord{
			Sale:      "S1",
			Product:   string(rune('A' + i)),
			Quantity:  1,
			LineTotal: float64(80 - i*10),
		})
	}

	ranked := RankProducts(items, nil, 10)
	analytics := CalculateProductAnalytics(items, nil, ranked, domain.InventoryStats{})

	assert.Len(t, analytics.TopPerformers, 5)
	assert.Equal(t, 80.0, analytics.TopPerformers[0].Revenue)

	assert.Len(t, analytics.SlowMovers, 5)
	assert.Equal(t, 10.0, analytics.SlowMovers[0].Revenue)
	assert.Equal(t, 50.0, analytics.SlowMovers[4].Revenue)
}
