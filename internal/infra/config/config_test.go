package config

import (
	"testing"
	"time"

	"shift_rotation_bot/internal/domain/rota"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	// Clear optional vars so host environment cannot leak into assertions.
	for _, k := range []string{
		"ANCHOR_DATE", "ANCHOR_DAY_NUMBER", "GOLD_SCHEME", "BLUE_SPECIAL_PERIODS",
		"ANNOUNCE_CHAT_ID", "CRON_SPEC_DAY_ANNOUNCE", "LOG_LEVEL", "ENVIRONMENT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.Equal(t, rota.DefaultAnchor.Date, cfg.AnchorDate)
	assert.Equal(t, rota.DefaultAnchor.DayNumber, cfg.AnchorDayNumber)
	assert.Equal(t, rota.GoldSchemeLegacy, cfg.GoldScheme)
	assert.Empty(t, cfg.BlueSpecialPeriods)
	assert.Zero(t, cfg.AnnounceChatID)
	assert.Equal(t, "0 6 * * *", cfg.CronSpecDayAnnounce)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)

	require.NoError(t, cfg.RuleSet().Validate())
}

func TestLoadRequiresToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCustomAnchor(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANCHOR_DATE", "2026-07-01")
	t.Setenv("ANCHOR_DAY_NUMBER", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), cfg.AnchorDate)
	assert.Equal(t, 2, cfg.AnchorDayNumber)
}

func TestLoadRejectsBadAnchor(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANCHOR_DATE", "07/01/2026")
	_, err := Load()
	assert.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("ANCHOR_DAY_NUMBER", "5")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadGoldScheme(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOLD_SCHEME", "REVISED")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, rota.GoldSchemeRevised, cfg.GoldScheme)

	t.Setenv("GOLD_SCHEME", "modern")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadSpecialPeriods(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BLUE_SPECIAL_PERIODS", "2025-06-23:2025-07-06; 2026-06-22:2026-07-05")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.BlueSpecialPeriods, 2)
	assert.Equal(t, time.Date(2025, time.June, 23, 0, 0, 0, 0, time.UTC), cfg.BlueSpecialPeriods[0].Start)
	assert.Equal(t, time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC), cfg.BlueSpecialPeriods[1].End)
}

func TestLoadRejectsBadSpecialPeriods(t *testing.T) {
	for _, raw := range []string{
		"2025-06-23",                       // no end
		"2025-07-06:2025-06-23",            // end before start
		"2025-06-23:2025-07-06:2025-08-01", // too many bounds
		"soon:later",                       // not dates
	} {
		setRequiredEnv(t)
		t.Setenv("BLUE_SPECIAL_PERIODS", raw)
		_, err := Load()
		assert.Error(t, err, "input %q", raw)
	}
}

func TestLoadAnnounceChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ANNOUNCE_CHAT_ID", "-1001234567890")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), cfg.AnnounceChatID)

	t.Setenv("ANNOUNCE_CHAT_ID", "not-a-chat")
	_, err = Load()
	assert.Error(t, err)
}
