package domain

import (
	"fmt"
	"time"
)

// Period é o token de período aceito pelos relatórios.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

// Valid informa se o token de período é conhecido
func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// ReportType identifica qual relatório está sendo calculado. Cada tipo tem seu
// próprio slot de cache de snapshot.
type ReportType string

const (
	ReportTypeAnalytics ReportType = "analytics"
	ReportTypePharmacy  ReportType = "pharmacy"
)

// TimeWindow é o intervalo [Start, End] já resolvido sobre o qual os registros
// são filtrados antes da redução. Invariante: Start <= End sempre.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se o instante cai dentro da janela (inclusivo nas duas pontas)
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Span retorna a duração da janela
func (w TimeWindow) Span() time.Duration {
	return w.End.Sub(w.Start)
}

// PeriodLabel monta o rótulo legível do período para a camada de apresentação
func PeriodLabel(p Period, w TimeWindow) string {
	switch p {
	case PeriodToday:
		return "Hoje"
	case PeriodWeek:
		return "Últimos 7 dias"
	case PeriodMonth:
		return "Último mês"
	case PeriodQuarter:
		return "Último trimestre"
	case PeriodYear:
		return "Último ano"
	default:
		return fmt.Sprintf("%s a %s", w.Start.Format("02/01/2006"), w.End.Format("02/01/2006"))
	}
}
