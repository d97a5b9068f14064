package telegram

import (
	"testing"
	"time"

	"shift_rotation_bot/internal/app"
	"shift_rotation_bot/internal/domain/rota"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFor(t *testing.T, rules *rota.RuleSet, dateStr, shift string) app.LookupResult {
	t.Helper()
	date, err := time.Parse("2006-01-02", dateStr)
	require.NoError(t, err)
	dayNum, err := rota.DayNumber(date, rules.Anchor)
	require.NoError(t, err)
	return app.LookupResult{
		Date:      date,
		DayNumber: dayNum,
		RawShift:  shift,
		Result:    rules.Classify(shift, date, dayNum),
	}
}

func TestRenderLookupCategory(t *testing.T) {
	rules := rota.NewRuleSet()
	out := renderLookup(lookupFor(t, rules, "2025-03-12", "Gold 1"))

	assert.Contains(t, out, "Wednesday, March 12, 2025")
	assert.Contains(t, out, "Day Number: 3")
	assert.Contains(t, out, "Shift: Gold 1")
	assert.Contains(t, out, "Shift type: Early")
}

func TestRenderLookupDescription(t *testing.T) {
	rules := rota.NewRuleSet()
	out := renderLookup(lookupFor(t, rules, "2025-03-12", "yellow 1-1"))

	assert.Contains(t, out, "APP/TML")
	assert.Contains(t, out, "8am-5pm")
	assert.NotContains(t, out, "Shift type:")
}

func TestRenderLookupUnrecognized(t *testing.T) {
	rules := rota.NewRuleSet()
	out := renderLookup(lookupFor(t, rules, "2025-03-12", "Teal 1"))

	assert.Contains(t, out, "refer to the most updated scheduling details")
	assert.Contains(t, out, "Teal 1")
	assert.Contains(t, out, "Day 3")
}

func TestRenderLookupFailure(t *testing.T) {
	rules := rota.NewRuleSet()
	out := renderLookup(lookupFor(t, rules, "2025-03-12", "gold"))

	assert.Contains(t, out, "Could not determine the shift type:")
	assert.Contains(t, out, "needs a number")
}
