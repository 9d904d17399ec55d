package scheduler

import (
	"context"
	"os"
	"time"

	"sobujigangas/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const defaultLowStockRefreshSpec = "0 6 * * *"

// Scheduler runs the recurring maintenance jobs. Today that is a single
// daily job recomputing every product's estoque_baixo flag.

type Scheduler struct {
	cron   *cron.Cron
	alerts usecase.IStockAlertUseCase
}

func New(alerts usecase.IStockAlertUseCase) *Scheduler {
	return &Scheduler{cron: cron.New(), alerts: alerts}
}

// Start registers the jobs and launches the cron loop. The schedule can
// be overridden with LOW_STOCK_REFRESH_CRON.
func (s *Scheduler) Start() error {
	spec := os.Getenv("LOW_STOCK_REFRESH_CRON")
	if spec == "" {
		spec = defaultLowStockRefreshSpec
	}

	if _, err := s.cron.AddFunc(spec, s.refreshLowStockFlags); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", spec).Msg("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) refreshLowStockFlags() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	changed, err := s.alerts.RefreshLowStockFlags(ctx)
	if err != nil {
		log.Error().Err(err).Msg("low stock refresh failed")
		return
	}
	log.Info().Int("changed", changed).Msg("low stock refresh completed")
}
