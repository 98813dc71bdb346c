package reporting

import (
	"time"

	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/pkg/utils"
)

// ResolveWindow converte o token de período em uma janela concreta de
// instantes. Para "custom", datas fora do padrão YYYY-MM-DD são rejeitadas e
// substituídas pelo dia corrente; pontas invertidas são trocadas para manter
// o invariante Start <= End.
func ResolveWindow(period domain.Period, customStart, customEnd string, now time.Time) domain.TimeWindow {
	switch period {
	case domain.PeriodToday:
		return domain.TimeWindow{
			Start: startOfDay(now),
			End:   endOfDay(now),
		}
	case domain.PeriodWeek:
		return domain.TimeWindow{Start: now.AddDate(0, 0, -7), End: now}
	case domain.PeriodQuarter:
		return domain.TimeWindow{Start: now.AddDate(0, -3, 0), End: now}
	case domain.PeriodYear:
		return domain.TimeWindow{Start: now.AddDate(-1, 0, 0), End: now}
	case domain.PeriodCustom:
		start := parseCustomDate(customStart, now)
		end := parseCustomDate(customEnd, now)

		if start.After(end) {
			start, end = end, start
		}

		return domain.TimeWindow{
			Start: startOfDay(start),
			End:   endOfDay(end),
		}
	default:
		// "month" é o período padrão dos relatórios
		return domain.TimeWindow{Start: now.AddDate(0, -1, 0), End: now}
	}
}

// PreviousWindow devolve a janela imediatamente anterior com a mesma duração,
// usada como base de comparação para a taxa de crescimento.
func PreviousWindow(window domain.TimeWindow) domain.TimeWindow {
	span := window.Span()
	end := window.Start.Add(-time.Millisecond)

	return domain.TimeWindow{
		Start: end.Add(-span),
		End:   end,
	}
}

func parseCustomDate(value string, fallback time.Time) time.Time {
	parsed, err := utils.ParseStrictDate(value)
	if err != nil {
		return fallback
	}

	return parsed
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay normaliza para 23:59:59.999 do dia, a ponta inclusiva usada nas
// comparações em nível de dia.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
