package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-crm-api/infrastructure/repository"
	"github.com/vfg2006/clinic-crm-api/internal/api"
	"github.com/vfg2006/clinic-crm-api/internal/config"
	"github.com/vfg2006/clinic-crm-api/internal/scheduler"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/backup"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/importing"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/scoring"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	revenueRepo := repository.NewRevenueRecordRepository(pgConn)
	executedRepo := repository.NewExecutedRecordRepository(pgConn)
	backupRepo := repository.NewBackupRepository(pgConn)
	importLogRepo := repository.NewImportLogRepository(pgConn)
	rfvRepo := repository.NewRFVRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	backupService := backup.NewService(revenueRepo, executedRepo, backupRepo)
	scorer := scoring.NewService(executedRepo, rfvRepo)

	importService := importing.NewService(
		&cfg.Import,
		revenueRepo,
		executedRepo,
		importLogRepo,
		userRepo,
		backupService,
		scorer,
	)

	// Agendador da reconstrução noturna dos perfis RFV
	rfvRebuildService := scheduler.NewRFVRebuildService(scorer, cfg)

	if err := rfvRebuildService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução de RFV")
	} else {
		logrus.Info("Agendador de reconstrução de RFV iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		importService,
		backupService,
		scorer,
		rfvRebuildService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
