package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/internal/usecases/reporting"
)

// SnapshotWarmupConfig representa a configuração do agendador de aquecimento
// de snapshots
type SnapshotWarmupConfig struct {
	CronSchedule  string
	WarmupEnabled bool
}

// Tipos de relatório pré-calculados a cada ciclo de aquecimento. Manter os
// snapshots quentes garante que o modo degradado sempre tenha o que servir.
var warmupReportTypes = []domain.ReportType{
	domain.ReportTypeAnalytics,
	domain.ReportTypePharmacy,
}

// SnapshotWarmupService gerencia o agendamento do pré-cálculo periódico dos
// snapshots de relatório
type SnapshotWarmupService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotWarmupConfig
	reportingService    reporting.Reporter
	warmupRunning       bool
	warmupMutex         sync.Mutex
	lastWarmupStartedAt time.Time
	lastWarmupEndedAt   time.Time
}

// NewSnapshotWarmupService cria uma nova instância do serviço de aquecimento
func NewSnapshotWarmupService(
	reportingService reporting.Reporter,
	warmupConfig SnapshotWarmupConfig,
) *SnapshotWarmupService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  warmupConfig.CronSchedule,
		"warmup_enabled": warmupConfig.WarmupEnabled,
	}).Info("Configuração do agendador de aquecimento de snapshots carregada")

	return &SnapshotWarmupService{
		scheduler:        scheduler,
		config:           warmupConfig,
		reportingService: reportingService,
		warmupRunning:    false,
	}
}

// Start inicia o agendador
func (s *SnapshotWarmupService) Start(ctx context.Context) error {
	if !s.config.WarmupEnabled {
		logrus.Info("Aquecimento de snapshots desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupAllSnapshots(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// warmupAllSnapshots recalcula o snapshot padrão de cada tipo de relatório
func (s *SnapshotWarmupService) warmupAllSnapshots(ctx context.Context) {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento de snapshots já em andamento, ignorando")
		return
	}
	s.warmupRunning = true
	s.warmupMutex.Unlock()

	startTime := time.Now()
	s.lastWarmupStartedAt = startTime

	defer func() {
		s.warmupMutex.Lock()
		s.warmupRunning = false
		s.warmupMutex.Unlock()
	}()

	logrus.Info("Iniciando aquecimento de snapshots para todos os tipos de relatório")

	for _, reportType := range warmupReportTypes {
		result, err := s.reportingService.ComputeSnapshot(ctx, reportType, domain.PeriodMonth, "", "")
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"report_type": reportType,
				"error":       err.Error(),
			}).Error("Erro ao aquecer snapshot do relatório")
			continue
		}

		if result.IsFromCache {
			// O cálculo ao vivo falhou e o motor devolveu o cache antigo:
			// nada novo foi persistido neste ciclo
			logrus.WithField("report_type", reportType).Warn("Aquecimento serviu snapshot antigo do cache")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"report_type": reportType,
			"snapshot_id": result.Snapshot.ID,
		}).Info("Snapshot aquecido com sucesso")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"reports":  len(warmupReportTypes),
	}).Info("Aquecimento de snapshots concluído")

	s.lastWarmupEndedAt = time.Now()
}

// TriggerManualWarmup inicia manualmente um ciclo de aquecimento
func (s *SnapshotWarmupService) TriggerManualWarmup() {
	s.warmupMutex.Lock()
	if s.warmupRunning {
		s.warmupMutex.Unlock()
		logrus.Info("Aquecimento de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.warmupMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual de snapshots")
	go s.warmupAllSnapshots(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotWarmupService) GetStatus() map[string]any {
	return map[string]any{
		"warmup_enabled":         s.config.WarmupEnabled,
		"warmup_cron":            s.config.CronSchedule,
		"warmup_running":         s.warmupRunning,
		"last_warmup_started_at": s.lastWarmupStartedAt,
		"last_warmup_ended_at":   s.lastWarmupEndedAt,
	}
}
