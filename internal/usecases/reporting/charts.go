package reporting

import (
	"strconv"
	"time"

	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/pkg/utils"
)

var monthLabels = []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// SynthesizeTrend mapeia cada venda para um bucket diário. É o plano B do
// binning quando o backend não expõe (ou devolve vazio) o rollup diário.
func SynthesizeTrend(sales []domain.SaleRecord) []domain.DailyRevenue {
	byDay := make(map[string]*domain.DailyRevenue)
	order := make([]string, 0)

	for _, sale := range sales {
		day := sale.CreatedAt.Format(time.DateOnly)

		bucket, exists := byDay[day]
		if !exists {
			bucket = &domain.DailyRevenue{
				Date: time.Date(sale.CreatedAt.Year(), sale.CreatedAt.Month(), sale.CreatedAt.Day(), 0, 0, 0, 0, sale.CreatedAt.Location()),
			}
			byDay[day] = bucket
			order = append(order, day)
		}

		bucket.Revenue += sale.TotalAmount
		bucket.Count++
	}

	trend := make([]domain.DailyRevenue, 0, len(order))
	for _, day := range order {
		trend = append(trend, *byDay[day])
	}

	return trend
}

// BuildYearChart acumula a série diária em 12 buckets mensais do ano corrente
// e, em paralelo, nos buckets do ano anterior usados só para comparação.
//
// MonthVariation compara o mês corrente com o mês anterior (janeiro compara
// com dezembro do ano anterior). YearVariation compara o acumulado dos dois
// anos somente até o mês corrente, inclusive.
func BuildYearChart(trend []domain.DailyRevenue, now time.Time) domain.YearChart {
	currentYear := now.Year()
	currentMonth := int(now.Month()) - 1

	points := make([]domain.ChartPoint, 12)
	for i := range points {
		points[i].Label = monthLabels[i]
	}

	var previousYearRevenue [12]float64

	for _, day := range trend {
		month := int(day.Date.Month()) - 1

		switch day.Date.Year() {
		case currentYear:
			points[month].Revenue += day.Revenue
			points[month].Count += day.Count
		case currentYear - 1:
			previousYearRevenue[month] += day.Revenue
		}
	}

	for i := range points {
		points[i].Revenue = utils.RoundWithTwoDecimalPlace(points[i].Revenue)
	}

	// Variação contra o mês anterior, virando para dezembro do ano passado
	// quando o mês corrente é janeiro
	previousMonthRevenue := previousYearRevenue[11]
	if currentMonth > 0 {
		previousMonthRevenue = points[currentMonth-1].Revenue
	}
	monthVariation := PercentChange(points[currentMonth].Revenue, previousMonthRevenue)

	var currentYTD, previousYTD float64
	for i := 0; i <= currentMonth; i++ {
		currentYTD += points[i].Revenue
		previousYTD += previousYearRevenue[i]
	}
	yearVariation := PercentChange(currentYTD, previousYTD)

	return domain.YearChart{
		Points:         points,
		MonthVariation: monthVariation,
		YearVariation:  yearVariation,
	}
}

// BuildMonthChart acumula a série diária em um bucket por dia do mês corrente.
func BuildMonthChart(trend []domain.DailyRevenue, now time.Time) []domain.ChartPoint {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	points := make([]domain.ChartPoint, daysInMonth)
	for i := range points {
		points[i].Label = strconv.Itoa(i + 1)
	}

	for _, day := range trend {
		if day.Date.Year() != now.Year() || day.Date.Month() != now.Month() {
			continue
		}

		index := day.Date.Day() - 1
		points[index].Revenue += day.Revenue
		points[index].Count += day.Count
	}

	for i := range points {
		points[i].Revenue = utils.RoundWithTwoDecimalPlace(points[i].Revenue)
	}

	return points
}

// ApplyTodayFallback cobre o caso de série diária vazia ou indisponível: se
// os 12 buckets anuais somam exatamente zero mas o faturamento de hoje é
// positivo, o bucket do mês corrente e o do dia corrente recebem esse valor
// com contagem sintética de 1, em vez de renderizar um gráfico todo zerado.
//
// TODO: revisar quando o backend garantir o rollup diário — este remendo pode
// esconder falha de pipeline de dados upstream.
func ApplyTodayFallback(yearChart *domain.YearChart, monthChart []domain.ChartPoint, todayRevenue float64, now time.Time) {
	if todayRevenue <= 0 {
		return
	}

	var annualTotal float64
	for _, point := range yearChart.Points {
		annualTotal += point.Revenue
	}

	if annualTotal != 0 {
		return
	}

	currentMonth := int(now.Month()) - 1
	yearChart.Points[currentMonth].Revenue = utils.RoundWithTwoDecimalPlace(todayRevenue)
	yearChart.Points[currentMonth].Count = 1

	dayIndex := now.Day() - 1
	if dayIndex >= 0 && dayIndex < len(monthChart) {
		monthChart[dayIndex].Revenue = utils.RoundWithTwoDecimalPlace(todayRevenue)
		monthChart[dayIndex].Count = 1
	}
}
