package domain

import "time"

// OverviewMetrics resume as vendas da janela selecionada.
type OverviewMetrics struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalProfit    float64 `json:"total_profit"`
	TotalSales     int     `json:"total_sales"`
	TotalCustomers int     `json:"total_customers"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	ProfitMargin   float64 `json:"profit_margin"`
	GrowthRate     float64 `json:"growth_rate"`
}

// FinancialSummary é o resumo financeiro calculado com custos reais dos itens.
type FinancialSummary struct {
	GrossRevenue float64 `json:"gross_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	NetProfit    float64 `json:"net_profit"`
	TaxAmount    float64 `json:"tax_amount"`
	Expenses     float64 `json:"expenses"`
	ProfitMargin float64 `json:"profit_margin"`
}

// CustomerMetrics segmenta os clientes da janela entre novos e recorrentes.
type CustomerMetrics struct {
	TotalCustomers       int     `json:"total_customers"`
	NewCustomers         int     `json:"new_customers"`
	ReturningCustomers   int     `json:"returning_customers"`
	RetentionRate        float64 `json:"retention_rate"`
	AvgOrdersPerCustomer float64 `json:"avg_orders_per_customer"`
	AvgSpentPerCustomer  float64 `json:"avg_spent_per_customer"`
	TotalPatients        int     `json:"total_patients"`
}

// RankedProduct é um produto agrupado do ranking de mais vendidos.
// Margin é sempre recalculada a partir de Profit/Revenue, nunca armazenada
// de forma independente, para não divergir dos valores base.
type RankedProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Margin       float64 `json:"margin"`
}

// CategoryPerformance é a participação de uma categoria na receita da janela.
type CategoryPerformance struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Quantity   int     `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

// InventoryStats são os contadores de estoque. Quando o backend expõe o
// endpoint pré-agregado de estoque, os valores dele prevalecem sobre os
// calculados localmente.
type InventoryStats struct {
	TotalProducts   int `json:"total_products"`
	InStockCount    int `json:"in_stock_count"`
	LowStockCount   int `json:"low_stock_count"`
	OutOfStockCount int `json:"out_of_stock_count"`
}

// ProductAnalytics agrega o desempenho por categoria e os extremos do ranking.
type ProductAnalytics struct {
	Categories    []CategoryPerformance `json:"categories"`
	TopPerformers []RankedProduct       `json:"top_performers"`
	SlowMovers    []RankedProduct       `json:"slow_movers"`
	Inventory     InventoryStats        `json:"inventory"`
}

// ChartPoint é um bucket de série temporal (mês do ano ou dia do mês).
type ChartPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// YearChart são os 12 buckets mensais do ano corrente mais as variações
// calculadas contra o mês anterior e contra o acumulado do ano anterior.
type YearChart struct {
	Points         []ChartPoint `json:"points"`
	MonthVariation float64      `json:"month_variation"`
	YearVariation  float64      `json:"year_variation"`
}

// DailyRevenue é um ponto da série diária usada pelo binning dos gráficos.
type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
	Count   int       `json:"count"`
}

// Snapshot é a única saída externa do motor de agregação: todas as métricas
// derivadas e séries de gráfico de uma execução. Nunca é mutado; cada execução
// bem-sucedida gera um novo e o anterior é substituído no cache.
type Snapshot struct {
	ID          string           `json:"id"`
	ReportType  ReportType       `json:"report_type"`
	Period      Period           `json:"period"`
	PeriodLabel string           `json:"period_label"`
	Window      TimeWindow       `json:"window"`
	Currency    string           `json:"currency"`
	Overview    OverviewMetrics  `json:"overview"`
	Financial   FinancialSummary `json:"financial"`
	Customers   CustomerMetrics  `json:"customers"`
	Products    ProductAnalytics `json:"products"`
	TopProducts []RankedProduct  `json:"top_products"`
	YearChart   YearChart        `json:"year_chart"`
	MonthChart  []ChartPoint     `json:"month_chart"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// SnapshotResult embala o snapshot com a indicação de modo degradado
// (resultado servido do cache porque o cálculo ao vivo falhou).
type SnapshotResult struct {
	Snapshot    *Snapshot `json:"snapshot"`
	IsFromCache bool      `json:"is_from_cache"`
}
