// Package auditor runs the periodic capacity invariant check: for every tour
// the committed ticket quantity must not exceed capacity. It only observes
// and reports; repairing state is a human decision.
package auditor

import (
	"context"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type oversoldScanner interface {
	FindOversold(ctx context.Context) ([]*domain.OversoldTour, error)
}

type Auditor struct {
	scanner  oversoldScanner
	interval time.Duration
	logger   logger.Logger
}

func New(scanner oversoldScanner, interval time.Duration, logger logger.Logger) *Auditor {
	return &Auditor{
		scanner:  scanner,
		interval: interval,
		logger:   logger,
	}
}

func (a *Auditor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info("capacity auditor started",
		logger.Duration("interval", a.interval),
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("capacity auditor stopped")
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *Auditor) tick(ctx context.Context) {
	oversold, err := a.scanner.FindOversold(ctx)
	if err != nil {
		a.logger.Error("capacity audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.OversoldTours.Set(float64(len(oversold)))

	for _, o := range oversold {
		a.logger.Error("capacity invariant violated",
			logger.String("tour_id", o.TourID),
			logger.Int("capacity", o.Capacity),
			logger.Int("committed", o.Committed),
		)
	}
}
