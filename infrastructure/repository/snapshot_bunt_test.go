package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

func TestBuntSnapshotStore(t *testing.T) {
	store, err := NewBuntSnapshotStore(":memory:")
	assert.NoError(t, err)

	t.Run("Load sem snapshot retorna ErrSnapshotNotFound", func(t *testing.T) {
		snapshot, err := store.Load(domain.ReportTypeAnalytics)

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Save e Load fazem o ciclo completo", func(t *testing.T) {
		snapshot := &domain.Snapshot{
			ID:          "abc123",
			ReportType:  domain.ReportTypeAnalytics,
			Period:      domain.PeriodMonth,
			PeriodLabel: "Último mês",
			Currency:    "BRL",
			Overview: domain.OverviewMetrics{
				TotalRevenue: 1234.56,
				TotalSales:   42,
			},
			GeneratedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		}

		assert.NoError(t, store.Save(domain.ReportTypeAnalytics, snapshot))

		loaded, err := store.Load(domain.ReportTypeAnalytics)

		assert.NoError(t, err)
		assert.Equal(t, "abc123", loaded.ID)
		assert.Equal(t, domain.PeriodMonth, loaded.Period)
		assert.Equal(t, 1234.56, loaded.Overview.TotalRevenue)
		assert.Equal(t, 42, loaded.Overview.TotalSales)
		assert.True(t, loaded.GeneratedAt.Equal(snapshot.GeneratedAt))
	})

	t.Run("cada tipo de relatório tem seu próprio slot", func(t *testing.T) {
		pharmacy := &domain.Snapshot{ID: "pharm1", ReportType: domain.ReportTypePharmacy}
		assert.NoError(t, store.Save(domain.ReportTypePharmacy, pharmacy))

		analytics, err := store.Load(domain.ReportTypeAnalytics)
		assert.NoError(t, err)
		assert.Equal(t, "abc123", analytics.ID)

		loaded, err := store.Load(domain.ReportTypePharmacy)
		assert.NoError(t, err)
		assert.Equal(t, "pharm1", loaded.ID)
	})

	t.Run("Save sobrescreve o snapshot anterior", func(t *testing.T) {
		newer := &domain.Snapshot{ID: "def456", ReportType: domain.ReportTypeAnalytics}
		assert.NoError(t, store.Save(domain.ReportTypeAnalytics, newer))

		loaded, err := store.Load(domain.ReportTypeAnalytics)
		assert.NoError(t, err)
		assert.Equal(t, "def456", loaded.ID)
	})
}
