package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/config"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
	scoringmocks "github.com/vfg2006/clinic-crm-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

func TestRFVRebuildDesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)

	service := NewRFVRebuildService(scorer, &config.Config{
		RFVRebuild: config.RFVRebuild{CronSchedule: "0 2 * * *", Enabled: false},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["rebuild_enabled"])
}

func TestTriggerManualRebuildExecutaRecalculo(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)

	done := make(chan struct{})
	scorer.EXPECT().
		RecalculateAll().
		DoAndReturn(func() (*domain.RFVResult, error) {
			close(done)
			return &domain.RFVResult{Success: true, Updated: 2, Total: 2}, nil
		})

	service := NewRFVRebuildService(scorer, &config.Config{
		RFVRebuild: config.RFVRebuild{CronSchedule: "0 2 * * *", Enabled: true},
	})

	service.TriggerManualRebuild()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconstrução manual não executou o recálculo")
	}
}

func TestGetStatusDuranteReconstrucaoEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := scoringmocks.NewMockScorer(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	scorer.EXPECT().
		RecalculateAll().
		DoAndReturn(func() (*domain.RFVResult, error) {
			close(started)
			<-release
			return &domain.RFVResult{Success: true}, nil
		})

	service := NewRFVRebuildService(scorer, &config.Config{
		RFVRebuild: config.RFVRebuild{CronSchedule: "0 2 * * *", Enabled: true},
	})

	service.TriggerManualRebuild()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("reconstrução manual não iniciou")
	}

	// Consulta concorrente com o job em andamento: o snapshot dos carimbos de
	// tempo sai consistente com o estado "rodando".
	status := service.GetStatus()
	assert.Equal(t, true, status["rebuild_running"])
	assert.False(t, status["last_rebuild_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_rebuild_completed_at"].(time.Time).IsZero())

	close(release)
}
