package scheduler

import (
	"fmt"
	"time"

	"shift_rotation_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// AnnounceScheduler runs the daily day-number announcement on a cron spec.
type AnnounceScheduler struct {
	cronEngine          *cron.Cron
	announceService     *app.AnnounceService
	logger              *logrus.Entry
	cronSpecDayAnnounce string
}

func NewAnnounceScheduler(
	announceService *app.AnnounceService,
	logger *logrus.Entry,
	cronSpecDayAnnounce string, // e.g. "0 6 * * *" (6:00 AM daily)
) *AnnounceScheduler {
	return &AnnounceScheduler{
		cronEngine:          cron.New(cron.WithLocation(time.Local)), // Announcements follow server-local mornings
		announceService:     announceService,
		logger:              logger,
		cronSpecDayAnnounce: cronSpecDayAnnounce,
	}
}

func (s *AnnounceScheduler) Start() error {
	s.logger.Info("Starting announcement scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDayAnnounce, func() {
		s.logger.Info("Cron job triggered for daily day-number announcement")
		if err := s.announceService.AnnounceDayNumber(time.Now()); err != nil {
			s.logger.WithError(err).Error("Daily day-number announcement failed")
		}
	})
	if err != nil {
		return fmt.Errorf("could not add day-number announcement cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpecDayAnnounce).Info("Announcement scheduler started")
	return nil
}

func (s *AnnounceScheduler) Stop() {
	s.logger.Info("Stopping announcement scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish
	<-ctx.Done()
	s.logger.Info("Announcement scheduler gracefully stopped")
}
