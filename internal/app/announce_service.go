// internal/app/announce_service.go
package app

import (
	"fmt"
	"time"

	"shift_rotation_bot/internal/domain/rota"
	domainTelegram "shift_rotation_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// AnnounceService pushes the daily day-number announcement to the staffing
// chat so nobody has to ask the bot every morning.
type AnnounceService struct {
	rules          *rota.RuleSet
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	announceChatID int64
}

func NewAnnounceService(
	rules *rota.RuleSet,
	tc domainTelegram.Client,
	logger *logrus.Entry,
	announceChatID int64, // 0 disables announcements
) *AnnounceService {
	return &AnnounceService{
		rules:          rules,
		telegramClient: tc,
		logger:         logger,
		announceChatID: announceChatID,
	}
}

// AnnounceDayNumber sends the day number for the given date to the configured
// chat. A zero chat ID is a no-op, not an error.
func (s *AnnounceService) AnnounceDayNumber(date time.Time) error {
	if s.announceChatID == 0 {
		s.logger.Debug("No announce chat configured; skipping day-number announcement")
		return nil
	}

	dayNum, err := rota.DayNumber(date, s.rules.Anchor)
	if err != nil {
		s.logger.WithError(err).Error("Failed to compute day number for announcement")
		return fmt.Errorf("failed to compute day number for announcement: %w", err)
	}

	text := fmt.Sprintf("Good morning! %s is Day %d of the rotation cycle.",
		date.Format("Monday, January 2, 2006"), dayNum)
	if err := s.telegramClient.SendMessage(s.announceChatID, text, nil); err != nil {
		s.logger.WithError(err).WithField("chat_id", s.announceChatID).Error("Failed to send day-number announcement")
		return fmt.Errorf("failed to send day-number announcement: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":    s.announceChatID,
		"day_number": dayNum,
	}).Info("Day-number announcement sent")
	return nil
}
