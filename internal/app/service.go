package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mergington/activities/internal/domain"
	"github.com/mergington/activities/internal/metrics"
)

// Service is the application layer. It orchestrates all use cases over the
// activity repository and records outcome metrics.
type Service struct {
	activities domain.ActivityRepository
}

// NewService creates the application layer service.
func NewService(activities domain.ActivityRepository) *Service {
	return &Service{activities: activities}
}

// ListActivities returns the full activity table keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	return s.activities.List(ctx)
}

// Signup registers email for the named activity.
// Returns domain.ErrActivityNotFound or domain.ErrAlreadySignedUp.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if err := s.activities.Signup(ctx, activity, email); err != nil {
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			metrics.SignupsTotal.WithLabelValues(activity, metrics.StatusRejected).Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues(activity, metrics.StatusOK).Inc()
	s.updateRosterGauge(ctx, activity)
	slog.InfoContext(ctx, "Participant signed up", "activity", activity, "email", email)
	return nil
}

// Unregister removes email's registration from the named activity.
// Returns domain.ErrActivityNotFound or domain.ErrNotSignedUp.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.activities.Unregister(ctx, activity, email); err != nil {
		if errors.Is(err, domain.ErrNotSignedUp) {
			metrics.UnregistrationsTotal.WithLabelValues(activity, metrics.StatusRejected).Inc()
		}
		return err
	}

	metrics.UnregistrationsTotal.WithLabelValues(activity, metrics.StatusOK).Inc()
	s.updateRosterGauge(ctx, activity)
	slog.InfoContext(ctx, "Participant unregistered", "activity", activity, "email", email)
	return nil
}

func (s *Service) updateRosterGauge(ctx context.Context, activity string) {
	current, err := s.activities.Get(ctx, activity)
	if err != nil {
		return
	}
	metrics.RosterSize.WithLabelValues(activity).Set(float64(len(current.Participants)))
}
