package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/infrastructure/database/mongodb"
	"github.com/apeiros/support-dashboard-api/infrastructure/repository"
	"github.com/apeiros/support-dashboard-api/internal/api"
	"github.com/apeiros/support-dashboard-api/internal/config"
	"github.com/apeiros/support-dashboard-api/internal/scheduler"
	"github.com/apeiros/support-dashboard-api/internal/usecases/authenticating"
	"github.com/apeiros/support-dashboard-api/internal/usecases/billing"
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

	mongoConn := mongoconn(ctx, cfg.Mongo)
	defer mongoConn.Close(context.Background())

	storeRepo := repository.NewStoreRepository(mongoConn)
	orgRepo := repository.NewOrganizationRepository(mongoConn)
	billRepo := repository.NewBillRepository(mongoConn)
	extractionRepo := repository.NewExtractionRepository(mongoConn)
	walletRepo := repository.NewWalletRepository(mongoConn)
	paymentRepo := repository.NewPaymentRepository(mongoConn)
	userRepo := repository.NewUserRepository(mongoConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	billingService := billing.NewService(
		cfg,
		storeRepo,
		orgRepo,
		billRepo,
		extractionRepo,
		walletRepo,
		paymentRepo,
	)

	// Inicializa o agendador do panorama diário de bills
	dailyOverviewService := scheduler.NewDailyBillOverviewService(billingService, cfg)

	if err := dailyOverviewService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do panorama diário de bills")
	} else {
		logrus.Info("Agendador do panorama diário de bills iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		billingService,
		authenticator,
		dailyOverviewService,
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

// mongoconn cria a conexão com o banco de documentos
func mongoconn(ctx context.Context, mongoConfig config.Mongo) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, mongoConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com MongoDB")
	}

	logrus.Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}
