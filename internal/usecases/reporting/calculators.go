package reporting

import (
	"sort"

	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/pkg/utils"
)

// Os calculadores deste arquivo são funções puras sobre listas de registros
// já filtradas pela janela; nenhum deles faz I/O. As somas acumulam em valor
// bruto e o arredondamento acontece uma única vez, na derivação final de cada
// métrica.

// PercentChange calcula a variação percentual contra a base do período
// anterior. Base zero com valor atual positivo é definida como 100%; base e
// valor zerados, como 0%.
func PercentChange(current, baseline float64) float64 {
	if baseline == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - baseline) / baseline * 100)
}

// FilterSales devolve apenas as vendas cujo created_at cai dentro da janela
// (pontas inclusivas).
func FilterSales(sales []domain.SaleRecord, window domain.TimeWindow) []domain.SaleRecord {
	filtered := make([]domain.SaleRecord, 0, len(sales))

	for _, sale := range sales {
		if window.Contains(sale.CreatedAt) {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}

// FilterItemsBySales descarta itens cuja venda pai não está no lote filtrado:
// itens órfãos ou de vendas fora da janela não entram na agregação.
func FilterItemsBySales(items []domain.SaleItemRecord, sales []domain.SaleRecord) []domain.SaleItemRecord {
	saleIDs := make(map[string]bool, len(sales))
	for _, sale := range sales {
		saleIDs[sale.ID] = true
	}

	filtered := make([]domain.SaleItemRecord, 0, len(items))
	for _, item := range items {
		if saleIDs[item.Sale] {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// SumRevenue soma o total_amount das vendas.
func SumRevenue(sales []domain.SaleRecord) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.TotalAmount
	}

	return total
}

// CalculateOverview reduz as vendas da janela no resumo geral. O lucro usa o
// proxy fixo de custo sobre a receita (não os custos reais dos itens); o
// resumo financeiro é quem usa os custos reais.
func CalculateOverview(sales []domain.SaleRecord, previousRevenue float64, costRatio float64) domain.OverviewMetrics {
	totalRevenue := SumRevenue(sales)
	totalProfit := totalRevenue - totalRevenue*costRatio
	totalSales := len(sales)

	customers := make(map[string]bool)
	for _, sale := range sales {
		if sale.Customer != nil {
			customers[*sale.Customer] = true
		}
	}

	avgOrderValue := 0.0
	if totalSales > 0 {
		avgOrderValue = totalRevenue / float64(totalSales)
	}

	profitMargin := 0.0
	if totalRevenue > 0 {
		profitMargin = totalProfit / totalRevenue * 100
	}

	return domain.OverviewMetrics{
		TotalRevenue:   utils.RoundWithTwoDecimalPlace(totalRevenue),
		TotalProfit:    utils.RoundWithTwoDecimalPlace(totalProfit),
		TotalSales:     totalSales,
		TotalCustomers: len(customers),
		AvgOrderValue:  utils.RoundWithTwoDecimalPlace(avgOrderValue),
		ProfitMargin:   utils.RoundWithTwoDecimalPlace(profitMargin),
		GrowthRate:     PercentChange(totalRevenue, previousRevenue),
	}
}

// RankProducts agrupa os itens por produto e devolve o ranking decrescente
// por receita, limitado a limit posições. Empates preservam a ordem de
// chegada dos itens; não há chave secundária.
func RankProducts(items []domain.SaleItemRecord, products map[string]domain.ProductRecord, limit int) []domain.RankedProduct {
	ranked := make([]domain.RankedProduct, 0)
	indexByProduct := make(map[string]int)

	for _, item := range items {
		index, exists := indexByProduct[item.Product]
		if !exists {
			category := domain.DefaultCategory
			name := item.ProductName

			if product, ok := products[item.Product]; ok {
				if product.Category != "" {
					category = product.Category
				}
				if name == "" {
					name = product.Name
				}
			}

			ranked = append(ranked, domain.RankedProduct{
				ID:       item.Product,
				Name:     name,
				Category: category,
			})
			index = len(ranked) - 1
			indexByProduct[item.Product] = index
		}

		ranked[index].QuantitySold += item.Quantity
		ranked[index].Revenue += item.LineTotal
		ranked[index].Profit += item.LineTotal - item.UnitCost*float64(item.Quantity)
	}

	// A margem é sempre derivada de Profit/Revenue depois do agrupamento
	for i := range ranked {
		ranked[i].Revenue = utils.RoundWithTwoDecimalPlace(ranked[i].Revenue)
		ranked[i].Profit = utils.RoundWithTwoDecimalPlace(ranked[i].Profit)
		if ranked[i].Revenue > 0 {
			ranked[i].Margin = utils.RoundWithTwoDecimalPlace(ranked[i].Profit / ranked[i].Revenue)
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Revenue > ranked[b].Revenue
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// CalculateFinancialSummary monta o resumo financeiro com os custos reais
// dos itens e o proxy de despesas operacionais sobre o lucro líquido.
func CalculateFinancialSummary(sales []domain.SaleRecord, items []domain.SaleItemRecord, overheadRatio float64) domain.FinancialSummary {
	grossRevenue := SumRevenue(sales)

	var totalCosts, taxAmount float64
	for _, item := range items {
		totalCosts += item.UnitCost * float64(item.Quantity)
	}
	for _, sale := range sales {
		taxAmount += sale.TaxAmount
	}

	netProfit := grossRevenue - totalCosts

	expenses := 0.0
	if netProfit > 0 {
		expenses = netProfit * overheadRatio
	}

	profitMargin := 0.0
	if grossRevenue > 0 {
		profitMargin = netProfit / grossRevenue * 100
	}

	return domain.FinancialSummary{
		GrossRevenue: utils.RoundWithTwoDecimalPlace(grossRevenue),
		TotalCosts:   utils.RoundWithTwoDecimalPlace(totalCosts),
		NetProfit:    utils.RoundWithTwoDecimalPlace(netProfit),
		TaxAmount:    utils.RoundWithTwoDecimalPlace(taxAmount),
		Expenses:     utils.RoundWithTwoDecimalPlace(expenses),
		ProfitMargin: utils.RoundWithTwoDecimalPlace(profitMargin),
	}
}

// CalculateCustomerMetrics segmenta os clientes da janela: quem comprou duas
// ou mais vezes é recorrente, quem comprou exatamente uma vez é novo.
func CalculateCustomerMetrics(sales []domain.SaleRecord, totalPatients int) domain.CustomerMetrics {
	orders := make(map[string]int)
	for _, sale := range sales {
		if sale.Customer != nil {
			orders[*sale.Customer]++
		}
	}

	totalCustomers := len(orders)

	var returning, newCustomers int
	for _, count := range orders {
		if count >= 2 {
			returning++
		} else {
			newCustomers++
		}
	}

	retentionRate := 0.0
	avgOrders := 0.0
	avgSpent := 0.0

	if totalCustomers > 0 {
		retentionRate = float64(returning) / float64(totalCustomers) * 100
		avgOrders = float64(len(sales)) / float64(totalCustomers)
		avgSpent = SumRevenue(sales) / float64(totalCustomers)
	}

	return domain.CustomerMetrics{
		TotalCustomers:       totalCustomers,
		NewCustomers:         newCustomers,
		ReturningCustomers:   returning,
		RetentionRate:        utils.RoundWithTwoDecimalPlace(retentionRate),
		AvgOrdersPerCustomer: utils.RoundWithTwoDecimalPlace(avgOrders),
		AvgSpentPerCustomer:  utils.RoundWithTwoDecimalPlace(avgSpent),
		TotalPatients:        totalPatients,
	}
}

// CalculateProductAnalytics agrega receita, lucro e quantidade por categoria
// e expõe os extremos do ranking: os 5 primeiros como destaque e os 5 últimos
// em ordem invertida, com o pior desempenho primeiro.
func CalculateProductAnalytics(
	items []domain.SaleItemRecord,
	products map[string]domain.ProductRecord,
	ranked []domain.RankedProduct,
	inventory domain.InventoryStats,
) domain.ProductAnalytics {
	categories := make([]domain.CategoryPerformance, 0)
	indexByCategory := make(map[string]int)

	var totalRevenue float64

	for _, item := range items {
		category := domain.DefaultCategory
		if product, ok := products[item.Product]; ok && product.Category != "" {
			category = product.Category
		}

		index, exists := indexByCategory[category]
		if !exists {
			categories = append(categories, domain.CategoryPerformance{Category: category})
			index = len(categories) - 1
			indexByCategory[category] = index
		}

		categories[index].Revenue += item.LineTotal
		categories[index].Profit += item.LineTotal - item.UnitCost*float64(item.Quantity)
		categories[index].Quantity += item.Quantity
		totalRevenue += item.LineTotal
	}

	for i := range categories {
		if totalRevenue > 0 {
			categories[i].Percentage = utils.RoundWithTwoDecimalPlace(categories[i].Revenue / totalRevenue * 100)
		}
		categories[i].Revenue = utils.RoundWithTwoDecimalPlace(categories[i].Revenue)
		categories[i].Profit = utils.RoundWithTwoDecimalPlace(categories[i].Profit)
	}

	sort.SliceStable(categories, func(a, b int) bool {
		return categories[a].Revenue > categories[b].Revenue
	})

	topCount := 5
	if len(ranked) < topCount {
		topCount = len(ranked)
	}
	topPerformers := make([]domain.RankedProduct, topCount)
	copy(topPerformers, ranked[:topCount])

	slowCount := 5
	if len(ranked) < slowCount {
		slowCount = len(ranked)
	}
	slowMovers := make([]domain.RankedProduct, 0, slowCount)
	for i := len(ranked) - 1; i >= len(ranked)-slowCount; i-- {
		slowMovers = append(slowMovers, ranked[i])
	}

	return domain.ProductAnalytics{
		Categories:    categories,
		TopPerformers: topPerformers,
		SlowMovers:    slowMovers,
		Inventory:     inventory,
	}
}
