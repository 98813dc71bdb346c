package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/repository"
	"github.com/vfg2006/pharmacy-analytics-api/internal/config"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
	"github.com/vfg2006/pharmacy-analytics-api/pkg/utils"
)

// Service implementa o Reporter orquestrando o integrador da farmácia, os
// calculadores puros e o cache de snapshots.
type Service struct {
	cfg           *config.Config
	pharmaService pharma.PharmaIntegrator
	snapshotRepo  repository.SnapshotRepository
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator pharma.PharmaIntegrator,
	snapshotRepo repository.SnapshotRepository,
) Reporter {
	return &Service{
		cfg:           cfg,
		pharmaService: integrator,
		snapshotRepo:  snapshotRepo,
		now:           time.Now,
	}
}

// fetchResult acumula o resultado do fan-out de buscas ao backend. Os campos
// de erro das listas são fatais; os das estatísticas pré-agregadas não.
type fetchResult struct {
	sales    []domain.SaleRecord
	items    []domain.SaleItemRecord
	products []domain.ProductRecord
	patients []domain.PatientRecord
	trend    []domain.DailyRevenue

	todayRevenue float64
	inventory    *domain.InventoryStats

	salesErr    error
	itemsErr    error
	productsErr error
	patientsErr error
	trendErr    error
}

// firstFatal devolve o primeiro erro de endpoint de listagem, na ordem fixa de
// precedência. A série diária não entra: quando ela falha, é sintetizada a
// partir das próprias vendas.
func (r *fetchResult) firstFatal() error {
	for _, err := range []error{r.salesErr, r.itemsErr, r.productsErr, r.patientsErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ComputeSnapshot(
	ctx context.Context,
	reportType domain.ReportType,
	period domain.Period,
	customStart, customEnd string,
) (*domain.SnapshotResult, error) {
	if !period.Valid() {
		period = domain.PeriodMonth
	}

	now := s.now()
	window := ResolveWindow(period, customStart, customEnd, now)
	previous := PreviousWindow(window)

	// As vendas e itens são buscados num intervalo único cobrindo a janela
	// anterior e a atual, para a taxa de crescimento sair do mesmo lote
	fetchRange := domain.TimeWindow{Start: previous.Start, End: window.End}

	result := s.fetchAll(ctx, fetchRange)

	if err := result.firstFatal(); err != nil {
		logrus.WithFields(logrus.Fields{
			"report_type": reportType,
			"period":      period,
			"error":       err,
		}).Error("Erro ao buscar dados do backend, tentando snapshot cacheado")
		return s.loadCachedSnapshot(reportType, err)
	}

	snapshot := s.buildSnapshot(reportType, period, window, previous, now, result)

	if err := s.snapshotRepo.Save(reportType, snapshot); err != nil {
		// Falha de persistência não invalida o cálculo: o snapshot recém
		// calculado segue para o chamador e só o cache fica defasado
		logrus.WithFields(logrus.Fields{
			"report_type": reportType,
			"error":       err,
		}).Warn("Erro ao persistir snapshot no cache")
	}

	return &domain.SnapshotResult{Snapshot: snapshot, IsFromCache: false}, nil
}

// fetchAll dispara as buscas em paralelo e espera todas terminarem. Cada
// goroutine escreve somente nos campos dela no resultado compartilhado.
func (s *Service) fetchAll(ctx context.Context, fetchRange domain.TimeWindow) *fetchResult {
	result := &fetchResult{}

	wg := sync.WaitGroup{}
	wg.Add(7)

	go func() {
		defer wg.Done()
		result.sales, result.salesErr = s.pharmaService.FetchSales(ctx, fetchRange)
	}()

	go func() {
		defer wg.Done()
		result.items, result.itemsErr = s.pharmaService.FetchSaleItems(ctx, fetchRange)
	}()

	go func() {
		defer wg.Done()
		result.products, result.productsErr = s.pharmaService.FetchProducts(ctx)
	}()

	go func() {
		defer wg.Done()
		result.patients, result.patientsErr = s.pharmaService.FetchPatients(ctx)
	}()

	go func() {
		defer wg.Done()
		result.trend, result.trendErr = s.pharmaService.FetchDailyTrend(ctx, s.cfg.Analytics.TrendDays)
	}()

	go func() {
		defer wg.Done()
		revenue, err := s.pharmaService.FetchTodayRevenue(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err,
			}).Warn("Erro ao buscar faturamento de hoje, seguindo sem o valor")
			return
		}
		result.todayRevenue = revenue
	}()

	go func() {
		defer wg.Done()
		inventory, err := s.pharmaService.FetchInventoryStats(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err,
			}).Warn("Erro ao buscar estatísticas de estoque, usando contagem local")
			return
		}
		result.inventory = inventory
	}()

	wg.Wait()

	return result
}

func (s *Service) buildSnapshot(
	reportType domain.ReportType,
	period domain.Period,
	window, previous domain.TimeWindow,
	now time.Time,
	result *fetchResult,
) *domain.Snapshot {
	windowSales := FilterSales(result.sales, window)
	windowItems := FilterItemsBySales(result.items, windowSales)
	previousSales := FilterSales(result.sales, previous)
	previousRevenue := SumRevenue(previousSales)

	productsByID := make(map[string]domain.ProductRecord, len(result.products))
	for _, product := range result.products {
		productsByID[product.ID] = product
	}

	inventory := s.resolveInventory(result)
	ranked := RankProducts(windowItems, productsByID, s.cfg.Analytics.TopProducts)

	trend := result.trend
	if len(trend) == 0 {
		if result.trendErr != nil {
			logrus.WithFields(logrus.Fields{
				"error": result.trendErr,
			}).Warn("Erro ao buscar série diária, sintetizando a partir das vendas")
		}
		trend = SynthesizeTrend(result.sales)
	}

	yearChart := BuildYearChart(trend, now)
	monthChart := BuildMonthChart(trend, now)
	ApplyTodayFallback(&yearChart, monthChart, result.todayRevenue, now)

	id, err := utils.GenerateID()
	if err != nil {
		logrus.Warn("Erro ao gerar ID do snapshot:", err)
	}

	return &domain.Snapshot{
		ID:          id,
		ReportType:  reportType,
		Period:      period,
		PeriodLabel: domain.PeriodLabel(period, window),
		Window:      window,
		Currency:    s.cfg.Analytics.Currency,
		Overview:    CalculateOverview(windowSales, previousRevenue, s.cfg.Analytics.CostRatio),
		Financial:   CalculateFinancialSummary(windowSales, windowItems, s.cfg.Analytics.OverheadRatio),
		Customers:   CalculateCustomerMetrics(windowSales, len(result.patients)),
		Products:    CalculateProductAnalytics(windowItems, productsByID, ranked, inventory),
		TopProducts: ranked,
		YearChart:   yearChart,
		MonthChart:  monthChart,
		GeneratedAt: now,
	}
}

// resolveInventory prioriza as estatísticas pré-agregadas do backend; na falta
// delas, conta localmente os produtos ativos do catálogo.
func (s *Service) resolveInventory(result *fetchResult) domain.InventoryStats {
	if result.inventory != nil {
		return *result.inventory
	}

	inventory := domain.InventoryStats{}
	for _, product := range result.products {
		if product.IsActive {
			inventory.TotalProducts++
		}
	}

	return inventory
}

// loadCachedSnapshot é o modo degradado: devolve o último snapshot persistido
// do mesmo tipo de relatório. Sem snapshot no cache, o erro original da busca
// sobe inalterado para o chamador.
func (s *Service) loadCachedSnapshot(reportType domain.ReportType, fetchErr error) (*domain.SnapshotResult, error) {
	snapshot, err := s.snapshotRepo.Load(reportType)
	if err != nil {
		if err == repository.ErrSnapshotNotFound {
			return nil, fetchErr
		}
		logrus.WithFields(logrus.Fields{
			"report_type": reportType,
			"error":       err,
		}).Error("Erro ao carregar snapshot do cache")
		return nil, fetchErr
	}

	logrus.WithFields(logrus.Fields{
		"report_type":  reportType,
		"generated_at": snapshot.GeneratedAt,
	}).Info("Servindo snapshot cacheado em modo degradado")

	return &domain.SnapshotResult{Snapshot: snapshot, IsFromCache: true}, nil
}
