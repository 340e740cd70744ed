// Package scheduler contém os serviços de agendamento do dashboard de suporte
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/internal/config"
	"github.com/apeiros/support-dashboard-api/internal/usecases/billing"
	"github.com/apeiros/support-dashboard-api/pkg/utils"
)

// DailyBillOverviewService roda diariamente a contagem de bills do dia
// anterior e registra o panorama nos logs. É um job somente leitura: serve
// de aquecimento de cache do Mongo e de trilha de auditoria para o time de
// suporte, sem escrever em nenhuma coleção.
type DailyBillOverviewService struct {
	scheduler        *gocron.Scheduler
	aggregator       billing.Aggregator
	config           config.DailyOverview
	runRunning       bool
	runMutex         sync.Mutex
	lastRunStartedAt time.Time
	lastRunEndedAt   time.Time
}

func NewDailyBillOverviewService(aggregator billing.Aggregator, cfg *config.Config) *DailyBillOverviewService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.DailyOverview.CronSchedule,
	}).Info("Configuração do agendador do panorama diário de bills carregada")

	return &DailyBillOverviewService{
		scheduler:  scheduler,
		aggregator: aggregator,
		config:     cfg.DailyOverview,
	}
}

func (s *DailyBillOverviewService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do panorama diário de bills desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do panorama diário de bills")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunOverview(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no panorama diário de bills")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar panorama diário de bills: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do panorama diário de bills")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOverview executa uma rodada do panorama: conta os bills distintos de
// ontem por loja e loga o resultado. Rodadas concorrentes são descartadas.
func (s *DailyBillOverviewService) RunOverview(ctx context.Context) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		logrus.Warn("Panorama diário de bills já está em execução")
		return nil
	}

	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.runRunning = false
		s.lastRunEndedAt = time.Now()
	}()

	yesterday := time.Now().AddDate(0, 0, -1)
	start, end := utils.DayWindow(yesterday)

	logrus.WithFields(logrus.Fields{
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
	}).Info("Iniciando panorama diário de bills")

	report, err := s.aggregator.CountBillsInRange(ctx, start, end, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar bills do dia anterior")
		return err
	}

	for _, storeCount := range report.PerStore {
		logrus.WithFields(logrus.Fields{
			"store_name": storeCount.StoreName,
			"bill_count": storeCount.BillCount,
		}).Info("Panorama diário: bills por loja")
	}

	logrus.WithFields(logrus.Fields{
		"total_distinct_bills": report.TotalDistinctBills,
		"stores_with_bills":    len(report.PerStore),
	}).Info("Panorama diário de bills concluído")

	return nil
}

// TriggerManualRun inicia manualmente uma rodada do panorama diário
func (s *DailyBillOverviewService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Panorama diário de bills já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando rodada manual do panorama diário de bills")
	go s.RunOverview(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailyBillOverviewService) GetStatus() map[string]any {
	return map[string]any{
		"run_enabled":         s.config.Enabled,
		"run_cron":            s.config.CronSchedule,
		"run_running":         s.runRunning,
		"last_run_started_at": s.lastRunStartedAt,
		"last_run_ended_at":   s.lastRunEndedAt,
	}
}
