package usecase

import (
	"context"
	"time"

	"AstroVision/internal/ports"
)

// Scheduler wires the ticker driver with the cosmic weather refresh.
type Scheduler struct {
	driver  ports.Scheduler
	weather *WeatherService
}

// NewScheduler returns a helper to start/stop the recurring refresh.
func NewScheduler(driver ports.Scheduler, weather *WeatherService) *Scheduler {
	return &Scheduler{driver: driver, weather: weather}
}

// Start registers the refresh with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.weather == nil {
		return nil
	}

	job := func(trigger time.Time) {
		s.weather.Refresh(ctx, trigger)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
