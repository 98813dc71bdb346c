package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestSynthesizeTrend(t *testing.T) {
	sales := []domain.SaleRecord{
		{ID: "S1", CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), TotalAmount: 100},
		{ID: "S2", CreatedAt: time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC), TotalAmount: 50},
		{ID: "S3", CreatedAt: time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC), TotalAmount: 30},
	}

	trend := SynthesizeTrend(sales)

	assert.Len(t, trend, 2)

	assert.Equal(t, day(2024, 6, 1), trend[0].Date)
	assert.Equal(t, 150.0, trend[0].Revenue)
	assert.Equal(t, 2, trend[0].Count)

	assert.Equal(t, day(2024, 6, 3), trend[1].Date)
	assert.Equal(t, 30.0, trend[1].Revenue)
	assert.Equal(t, 1, trend[1].Count)
}

func TestBuildYearChart(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	trend := []domain.DailyRevenue{
		{Date: day(2024, 5, 10), Revenue: 100, Count: 3},
		{Date: day(2024, 6, 1), Revenue: 90, Count: 2},
		{Date: day(2024, 6, 10), Revenue: 60, Count: 1},
		{Date: day(2023, 1, 5), Revenue: 50, Count: 1},
		{Date: day(2023, 6, 20), Revenue: 100, Count: 2},
		{Date: day(2022, 6, 20), Revenue: 999, Count: 9}, // fora dos dois anos, ignorado
	}

	chart := BuildYearChart(trend, now)

	assert.Len(t, chart.Points, 12)
	assert.Equal(t, "Jan", chart.Points[0].Label)
	assert.Equal(t, "Dez", chart.Points[11].Label)

	assert.Equal(t, 100.0, chart.Points[4].Revenue)
	assert.Equal(t, 3, chart.Points[4].Count)
	assert.Equal(t, 150.0, chart.Points[5].Revenue)
	assert.Equal(t, 3, chart.Points[5].Count)
	assert.Equal(t, 0.0, chart.Points[0].Revenue)

	// Junho atual (150) contra maio (100)
	assert.Equal(t, 50.0, chart.MonthVariation)

	// Acumulado jan-jun: 250 atual contra 150 do ano anterior
	assert.Equal(t, 66.67, chart.YearVariation)
}

func TestBuildYearChartJanuaryWrapsToPreviousDecember(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	trend := []domain.DailyRevenue{
		{Date: day(2024, 1, 5), Revenue: 100, Count: 1},
		{Date: day(2023, 12, 20), Revenue: 200, Count: 2},
		{Date: day(2023, 1, 15), Revenue: 50, Count: 1},
	}

	chart := BuildYearChart(trend, now)

	// Janeiro compara com dezembro do ano anterior
	assert.Equal(t, -50.0, chart.MonthVariation)

	// Acumulado só de janeiro: 100 atual contra 50 do ano anterior
	assert.Equal(t, 100.0, chart.YearVariation)
}

func TestBuildMonthChart(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	trend := []domain.DailyRevenue{
		{Date: day(2024, 6, 1), Revenue: 80, Count: 2},
		{Date: day(2024, 6, 15), Revenue: 120, Count: 4},
		{Date: day(2024, 5, 15), Revenue: 999, Count: 9}, // outro mês, ignorado
	}

	points := BuildMonthChart(trend, now)

	// Junho tem 30 dias
	assert.Len(t, points, 30)
	assert.Equal(t, "1", points[0].Label)
	assert.Equal(t, "30", points[29].Label)

	assert.Equal(t, 80.0, points[0].Revenue)
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, 120.0, points[14].Revenue)
	assert.Equal(t, 4, points[14].Count)
	assert.Equal(t, 0.0, points[1].Revenue)
}

func TestApplyTodayFallback(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("gráfico zerado recebe o faturamento de hoje", func(t *testing.T) {
		yearChart := BuildYearChart(nil, now)
		monthChart := BuildMonthChart(nil, now)

		ApplyTodayFallback(&yearChart, monthChart, 450.5, now)

		assert.Equal(t, 450.5, yearChart.Points[5].Revenue)
		assert.Equal(t, 1, yearChart.Points[5].Count)
		assert.Equal(t, 450.5, monthChart[14].Revenue)
		assert.Equal(t, 1, monthChart[14].Count)
	})

	t.Run("gráfico com dados permanece intacto", func(t *testing.T) {
		trend := []domain.DailyRevenue{{Date: day(2024, 6, 1), Revenue: 80, Count: 2}}
		yearChart := BuildYearChart(trend, now)
		monthChart := BuildMonthChart(trend, now)

		ApplyTodayFallback(&yearChart, monthChart, 450.5, now)

		assert.Equal(t, 80.0, yearChart.Points[5].Revenue)
		assert.Equal(t, 2, yearChart.Points[5].Count)
		assert.Equal(t, 80.0, monthChart[0].Revenue)
	})

	t.Run("faturamento de hoje zerado não altera nada", func(t *testing.T) {
		yearChart := BuildYearChart(nil, now)
		monthChart := BuildMonthChart(nil, now)

		ApplyTodayFallback(&yearChart, monthChart, 0, now)

		for _, point := range yearChart.Points {
			assert.Equal(t, 0.0, point.Revenue)
			assert.Equal(t, 0, point.Count)
		}
	})
}
