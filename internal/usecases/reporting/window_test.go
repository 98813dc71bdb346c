package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		period        domain.Period
		customStart   string
		customEnd     string
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "today cobre o dia inteiro",
			period:        domain.PeriodToday,
			expectedStart: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "week volta sete dias",
			period:        domain.PeriodWeek,
			expectedStart: time.Date(2024, 6, 8, 12, 30, 0, 0, time.UTC),
			expectedEnd:   now,
		},
		{
			name:          "month é o período padrão",
			period:        domain.PeriodMonth,
			expectedStart: time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC),
			expectedEnd:   now,
		},
		{
			name:          "quarter volta três meses",
			period:        domain.PeriodQuarter,
			expectedStart: time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
			expectedEnd:   now,
		},
		{
			name:          "year volta um ano",
			period:        domain.PeriodYear,
			expectedStart: time.Date(2023, 6, 15, 12, 30, 0, 0, time.UTC),
			expectedEnd:   now,
		},
		{
			name:          "custom normaliza para limites do dia",
			period:        domain.PeriodCustom,
			customStart:   "2024-03-01",
			customEnd:     "2024-03-10",
			expectedStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "custom com pontas invertidas troca as datas",
			period:        domain.PeriodCustom,
			customStart:   "2024-03-10",
			customEnd:     "2024-03-01",
			expectedStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "custom com data fora do formato usa o dia corrente",
			period:        domain.PeriodCustom,
			customStart:   "10/03/2024",
			customEnd:     "2024-03-01",
			expectedStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:          "período desconhecido cai no padrão mensal",
			period:        domain.Period("fortnight"),
			expectedStart: time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC),
			expectedEnd:   now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.period, tt.customStart, tt.customEnd, now)

			assert.Equal(t, tt.expectedStart, window.Start)
			assert.Equal(t, tt.expectedEnd, window.End)
			assert.False(t, window.Start.After(window.End))
		})
	}
}

func TestPreviousWindow(t *testing.T) {
	window := domain.TimeWindow{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC),
	}

	previous := PreviousWindow(window)

	// A janela anterior termina 1ms antes do início da atual e tem a mesma duração
	assert.Equal(t, time.Date(2024, 5, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), previous.End)
	assert.Equal(t, window.Span(), previous.Span())
	assert.Equal(t, time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC), previous.Start)
}

func TestPreviousWindowDoesNotOverlap(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	window := ResolveWindow(domain.PeriodMonth, "", "", now)
	previous := PreviousWindow(window)

	assert.True(t, previous.End.Before(window.Start))
	assert.False(t, window.Contains(previous.End))
	assert.False(t, previous.Contains(window.Start))
}
