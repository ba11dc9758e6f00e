package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-crm-api/internal/config"
	"github.com/vfg2006/clinic-crm-api/internal/usecases/scoring"
)

// RFVRebuildConfig representa a configuração do agendador de reconstrução de RFV
type RFVRebuildConfig struct {
	CronSchedule   string
	RebuildEnabled bool
}

// RFVRebuildService agenda a reconstrução noturna dos perfis RFV. O job é a
// operação de reparo do subsistema: qualquer inconsistência acumulada nos
// perfis é corrigida no próximo recálculo completo.
type RFVRebuildService struct {
	scheduler              *gocron.Scheduler
	config                 RFVRebuildConfig
	scorer                 scoring.Scorer
	rebuildRunning         bool
	rebuildMutex           sync.Mutex
	lastRebuildStartedAt   time.Time
	lastRebuildCompletedAt time.Time
}

// NewRFVRebuildService cria uma nova instância do serviço de reconstrução de RFV
func NewRFVRebuildService(scorer scoring.Scorer, appConfig *config.Config) *RFVRebuildService {
	rebuildConfig := RFVRebuildConfig{
		CronSchedule:   appConfig.RFVRebuild.CronSchedule,
		RebuildEnabled: appConfig.RFVRebuild.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   rebuildConfig.CronSchedule,
		"rebuild_enabled": rebuildConfig.RebuildEnabled,
	}).Info("Configuração do agendador de reconstrução de RFV carregada")

	return &RFVRebuildService{
		scheduler:      scheduler,
		config:         rebuildConfig,
		scorer:         scorer,
		rebuildRunning: false,
	}
}

// Start inicia o agendador
func (s *RFVRebuildService) Start(ctx context.Context) error {
	if !s.config.RebuildEnabled {
		logrus.Info("Reconstrução noturna de RFV desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconstrução de RFV")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rebuildAllProfiles()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução de RFV: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconstrução de RFV")
		s.scheduler.Stop()
	}()

	return nil
}

// rebuildAllProfiles executa o recálculo completo dos perfis RFV
func (s *RFVRebuildService) rebuildAllProfiles() {
	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução de RFV já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.rebuildRunning = true
	s.lastRebuildStartedAt = startTime
	s.rebuildMutex.Unlock()

	defer func() {
		s.rebuildMutex.Lock()
		s.rebuildRunning = false
		s.rebuildMutex.Unlock()
	}()

	logrus.Info("Iniciando reconstrução completa dos perfis RFV")

	result, err := s.scorer.RecalculateAll()
	if err != nil {
		logrus.WithError(err).Error("Erro na reconstrução noturna de RFV")
		return
	}

	logrus.WithFields(logrus.Fields{
		"total":    result.Total,
		"updated":  result.Updated,
		"duration": time.Since(startTime).String(),
	}).Info("Reconstrução de RFV concluída")

	s.rebuildMutex.Lock()
	s.lastRebuildCompletedAt = time.Now()
	s.rebuildMutex.Unlock()
}

// TriggerManualRebuild inicia manualmente uma reconstrução de RFV
func (s *RFVRebuildService) TriggerManualRebuild() {
	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução de RFV já em andamento, ignorando solicitação manual")
		return
	}
	s.rebuildMutex.Unlock()

	logrus.Info("Iniciando reconstrução manual de RFV")
	go s.rebuildAllProfiles()
}

// GetStatus retorna o status atual do agendador
func (s *RFVRebuildService) GetStatus() map[string]any {
	s.rebuildMutex.Lock()
	running := s.rebuildRunning
	startedAt := s.lastRebuildStartedAt
	completedAt := s.lastRebuildCompletedAt
	s.rebuildMutex.Unlock()

	return map[string]any{
		"rebuild_enabled":           s.config.RebuildEnabled,
		"rebuild_cron":              s.config.CronSchedule,
		"rebuild_running":           running,
		"last_rebuild_started_at":   startedAt,
		"last_rebuild_completed_at": completedAt,
	}
}
