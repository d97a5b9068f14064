package app

import (
	"fmt"
	"time"

	"shift_rotation_bot/internal/domain/rota"

	"github.com/sirupsen/logrus"
)

// LookupResult carries everything the presentation layer needs to render one
// shift lookup: the inputs, the computed day number, and the classification.
type LookupResult struct {
	Date      time.Time
	DayNumber int
	RawShift  string
	Result    rota.Result
}

// RotaService orchestrates day-number calculation and shift classification.
// It holds the immutable rule set, so it is safe for concurrent use.
type RotaService struct {
	rules  *rota.RuleSet
	logger *logrus.Entry
}

func NewRotaService(rules *rota.RuleSet, logger *logrus.Entry) (*RotaService, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rotation rule set: %w", err)
	}
	return &RotaService{rules: rules, logger: logger}, nil
}

// DayNumber returns the rotation day number (1-4) for the given date.
func (s *RotaService) DayNumber(date time.Time) (int, error) {
	return rota.DayNumber(date, s.rules.Anchor)
}

// Lookup computes the day number for date and classifies rawShift against it.
// Classification problems come back inside the Result; the error return is
// reserved for a malformed date.
func (s *RotaService) Lookup(date time.Time, rawShift string) (LookupResult, error) {
	dayNum, err := rota.DayNumber(date, s.rules.Anchor)
	if err != nil {
		s.logger.WithError(err).Warn("Day number calculation rejected input date")
		return LookupResult{}, fmt.Errorf("failed to compute day number: %w", err)
	}

	result := s.rules.Classify(rawShift, date, dayNum)
	s.logger.WithFields(logrus.Fields{
		"date":       date.Format("2006-01-02"),
		"day_number": dayNum,
		"shift":      rawShift,
		"kind":       result.Kind,
	}).Info("Shift lookup classified")

	return LookupResult{Date: date, DayNumber: dayNum, RawShift: rawShift, Result: result}, nil
}
