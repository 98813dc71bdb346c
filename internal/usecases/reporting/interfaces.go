package reporting

import (
	"context"

	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

// Reporter define a interface do motor de agregação de métricas
type Reporter interface {
	// ComputeSnapshot executa o pipeline completo: resolve a janela, busca os
	// registros do backend, reduz as métricas e persiste o snapshot. Quando a
	// busca ao vivo falha, devolve o último snapshot cacheado em modo degradado.
	ComputeSnapshot(ctx context.Context, reportType domain.ReportType, period domain.Period, customStart, customEnd string) (*domain.SnapshotResult, error)
}
