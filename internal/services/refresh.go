package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PeriodicReloader re-reads the plaza dataset on an interval so edits to the
// source file show up without a restart
type PeriodicReloader struct {
	service  *TollService
	interval time.Duration
	log      *zap.Logger

	stopChan chan struct{}
	running  bool
}

// NewPeriodicReloader creates a reloader for the given service
func NewPeriodicReloader(service *TollService, interval time.Duration, log *zap.Logger) *PeriodicReloader {
	return &PeriodicReloader{
		service:  service,
		interval: interval,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background reload loop. A non-positive interval disables
// periodic reloading.
func (p *PeriodicReloader) Start(ctx context.Context) {
	if p.running || p.interval <= 0 {
		return
	}
	p.running = true
	p.log.Info("starting periodic dataset reload", zap.Duration("interval", p.interval))
	go p.reloadLoop(ctx)
}

// Stop gracefully stops the reload loop
func (p *PeriodicReloader) Stop() {
	if !p.running {
		return
	}
	p.running = false
	close(p.stopChan)
}

// IsRunning returns whether the reload loop is active
func (p *PeriodicReloader) IsRunning() bool {
	return p.running
}

func (p *PeriodicReloader) reloadLoop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			if snap, err := p.service.Reload(); err != nil {
				p.log.Warn("periodic dataset reload failed, keeping previous snapshot", zap.Error(err))
			} else {
				p.log.Info("dataset reloaded", zap.Int("plazas", len(snap.Plazas)))
			}
		}
	}
}
