package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestSnapshotWarmupService_warmupAllSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewSnapshotWarmupService(mockReporter, SnapshotWarmupConfig{
		CronSchedule:  "0 */6 * * *",
		WarmupEnabled: true,
	})

	// Um ciclo aquece o período padrão de cada tipo de relatório
	mockReporter.EXPECT().
		ComputeSnapshot(gomock.Any(), domain.ReportTypeAnalytics, domain.PeriodMonth, "", "").
		Return(&domain.SnapshotResult{Snapshot: &domain.Snapshot{ID: "a1"}}, nil)

	mockReporter.EXPECT().
		ComputeSnapshot(gomock.Any(), domain.ReportTypePharmacy, domain.PeriodMonth, "", "").
		Return(&domain.SnapshotResult{Snapshot: &domain.Snapshot{ID: "p1"}}, nil)

	service.warmupAllSnapshots(context.Background())

	assert.False(t, service.lastWarmupStartedAt.IsZero())
	assert.False(t, service.lastWarmupEndedAt.IsZero())
	assert.False(t, service.warmupRunning)
}

func TestSnapshotWarmupService_warmupContinuesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewSnapshotWarmupService(mockReporter, SnapshotWarmupConfig{
		CronSchedule:  "0 */6 * * *",
		WarmupEnabled: true,
	})

	// O primeiro relatório falha, o segundo ainda é aquecido
	mockReporter.EXPECT().
		ComputeSnapshot(gomock.Any(), domain.ReportTypeAnalytics, domain.PeriodMonth, "", "").
		Return(nil, errors.New("backend indisponível"))

	mockReporter.EXPECT().
		ComputeSnapshot(gomock.Any(), domain.ReportTypePharmacy, domain.PeriodMonth, "", "").
		Return(&domain.SnapshotResult{Snapshot: &domain.Snapshot{ID: "p1"}}, nil)

	service.warmupAllSnapshots(context.Background())

	assert.False(t, service.lastWarmupEndedAt.IsZero())
}

func TestSnapshotWarmupService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewSnapshotWarmupService(mockReporter, SnapshotWarmupConfig{
		CronSchedule:  "0 */6 * * *",
		WarmupEnabled: false,
	})

	// Desabilitado: nada é agendado e nenhum snapshot é calculado
	assert.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["warmup_enabled"])
}

func TestSnapshotWarmupService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	service := NewSnapshotWarmupService(mockReporter, SnapshotWarmupConfig{
		CronSchedule:  "30 2 * * *",
		WarmupEnabled: true,
	})

	status := service.GetStatus()

	assert.Equal(t, true, status["warmup_enabled"])
	assert.Equal(t, "30 2 * * *", status["warmup_cron"])
	assert.Equal(t, false, status["warmup_running"])
}
