package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/integrator/pharma/pharmaclient"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/repository"
	"github.com/vfg2006/pharmacy-analytics-api/internal/api"
	"github.com/vfg2006/pharmacy-analytics-api/internal/config"
	"github.com/vfg2006/pharmacy-analytics-api/internal/scheduler"
	"github.com/vfg2006/pharmacy-analytics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotRepo := newSnapshotRepository(ctx, cfg)

	pharmaClient := pharmaclient.NewClient(cfg)
	pharmaIntegrator := pharma.New(cfg, pharmaClient)

	reportingService := reporting.NewService(cfg, pharmaIntegrator, snapshotRepo)

	// Inicializa o agendador de aquecimento de snapshots
	snapshotWarmupService := scheduler.NewSnapshotWarmupService(
		reportingService,
		scheduler.SnapshotWarmupConfig{
			CronSchedule:  cfg.SnapshotWarmup.CronSchedule,
			WarmupEnabled: cfg.SnapshotWarmup.Enabled,
		},
	)

	if err := snapshotWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de snapshots")
	} else {
		logrus.Info("Agendador de aquecimento de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		snapshotWarmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newSnapshotRepository escolhe o store de snapshots conforme a configuração:
// "postgres" exige banco configurado; qualquer outro valor usa o arquivo local
func newSnapshotRepository(ctx context.Context, cfg *config.Config) repository.SnapshotRepository {
	if cfg.Cache.Driver == "postgres" {
		if cfg.Database.DSN == "" {
			logrus.Fatal("CACHE_DRIVER=postgres exige DATABASE_URL configurada")
		}

		pgConn := pgconn(ctx, cfg.Database)
		return repository.NewSnapshotRepository(pgConn)
	}

	store, err := repository.NewBuntSnapshotStore(cfg.Cache.BuntPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de snapshots")
	}

	logrus.WithField("path", cfg.Cache.BuntPath).Info("Cache de snapshots em arquivo local inicializado")
	return store
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
