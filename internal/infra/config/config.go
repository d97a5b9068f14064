package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shift_rotation_bot/internal/domain/rota"

	"github.com/joho/godotenv"
)

const dateLayout = "2006-01-02"

// AppConfig holds all configuration for the application.
type AppConfig struct {
	TelegramToken       string
	AnchorDate          time.Time
	AnchorDayNumber     int
	GoldScheme          rota.GoldScheme
	BlueSpecialPeriods  []rota.SpecialPeriod
	AnnounceChatID      int64 // 0 disables the daily announcement
	CronSpecDayAnnounce string
	LogLevel            string
	Environment         string
}

// RuleSet assembles the immutable rotation configuration the domain consumes.
func (c *AppConfig) RuleSet() *rota.RuleSet {
	return &rota.RuleSet{
		Anchor:      rota.Anchor{Date: c.AnchorDate, DayNumber: c.AnchorDayNumber},
		GoldScheme:  c.GoldScheme,
		BluePeriods: c.BlueSpecialPeriods,
	}
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	anchorDateStr := os.Getenv("ANCHOR_DATE")
	if anchorDateStr == "" {
		cfg.AnchorDate = rota.DefaultAnchor.Date
	} else {
		cfg.AnchorDate, err = time.Parse(dateLayout, anchorDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ANCHOR_DATE %q: expected YYYY-MM-DD: %w", anchorDateStr, err)
		}
	}

	anchorDayStr := os.Getenv("ANCHOR_DAY_NUMBER")
	if anchorDayStr == "" {
		cfg.AnchorDayNumber = rota.DefaultAnchor.DayNumber
	} else {
		cfg.AnchorDayNumber, err = strconv.Atoi(anchorDayStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ANCHOR_DAY_NUMBER %q: %w", anchorDayStr, err)
		}
		if cfg.AnchorDayNumber < 1 || cfg.AnchorDayNumber > 4 {
			return nil, fmt.Errorf("ANCHOR_DAY_NUMBER must be 1-4, got %d", cfg.AnchorDayNumber)
		}
	}

	schemeStr := strings.ToLower(os.Getenv("GOLD_SCHEME"))
	switch schemeStr {
	case "":
		cfg.GoldScheme = rota.GoldSchemeLegacy // Default: the pre-revision table
	case string(rota.GoldSchemeLegacy):
		cfg.GoldScheme = rota.GoldSchemeLegacy
	case string(rota.GoldSchemeRevised):
		cfg.GoldScheme = rota.GoldSchemeRevised
	default:
		return nil, fmt.Errorf("invalid GOLD_SCHEME %q: expected 'legacy' or 'revised'", schemeStr)
	}

	cfg.BlueSpecialPeriods, err = parseSpecialPeriods(os.Getenv("BLUE_SPECIAL_PERIODS"))
	if err != nil {
		return nil, fmt.Errorf("invalid BLUE_SPECIAL_PERIODS: %w", err)
	}

	announceChatStr := os.Getenv("ANNOUNCE_CHAT_ID")
	if announceChatStr != "" {
		cfg.AnnounceChatID, err = strconv.ParseInt(announceChatStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ANNOUNCE_CHAT_ID %q: %w", announceChatStr, err)
		}
	}

	cfg.CronSpecDayAnnounce = os.Getenv("CRON_SPEC_DAY_ANNOUNCE")
	if cfg.CronSpecDayAnnounce == "" {
		cfg.CronSpecDayAnnounce = "0 6 * * *" // Default: 6:00 AM daily
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// parseSpecialPeriods parses "start:end" date pairs separated by semicolons,
// e.g. "2025-06-23:2025-07-06;2026-06-22:2026-07-05".
func parseSpecialPeriods(raw string) ([]rota.SpecialPeriod, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var periods []rota.SpecialPeriod
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		bounds := strings.Split(pair, ":")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("period %q: expected 'YYYY-MM-DD:YYYY-MM-DD'", pair)
		}
		start, err := time.Parse(dateLayout, strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("period %q: bad start date: %w", pair, err)
		}
		end, err := time.Parse(dateLayout, strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("period %q: bad end date: %w", pair, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("period %q: end date precedes start date", pair)
		}
		periods = append(periods, rota.SpecialPeriod{Start: start, End: end})
	}
	return periods, nil
}
