package app

import (
	"fmt"
	"testing"
	"time"

	"shift_rotation_bot/internal/domain/rota"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	chatID int64
	text   string
}

type mockTelegramClient struct {
	sent    []sentMessage
	sendErr error
}

func (m *mockTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func TestAnnounceDayNumber(t *testing.T) {
	client := &mockTelegramClient{}
	svc := NewAnnounceService(rota.NewRuleSet(), client, testLogger(), 42)

	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC) // anchor+2, Day 1
	require.NoError(t, svc.AnnounceDayNumber(date))

	require.Len(t, client.sent, 1)
	assert.Equal(t, int64(42), client.sent[0].chatID)
	assert.Contains(t, client.sent[0].text, "Day 1")
	assert.Contains(t, client.sent[0].text, "March 14, 2025")
}

func TestAnnounceDayNumberDisabled(t *testing.T) {
	client := &mockTelegramClient{}
	svc := NewAnnounceService(rota.NewRuleSet(), client, testLogger(), 0)

	require.NoError(t, svc.AnnounceDayNumber(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, client.sent)
}

func TestAnnounceDayNumberSendFailure(t *testing.T) {
	client := &mockTelegramClient{sendErr: fmt.Errorf("telegram is down")}
	svc := NewAnnounceService(rota.NewRuleSet(), client, testLogger(), 42)

	err := svc.AnnounceDayNumber(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC))
	assert.ErrorContains(t, err, "telegram is down")
}

func TestAnnounceDayNumberBadDate(t *testing.T) {
	client := &mockTelegramClient{}
	svc := NewAnnounceService(rota.NewRuleSet(), client, testLogger(), 42)

	err := svc.AnnounceDayNumber(time.Time{})
	assert.Error(t, err)
	assert.Empty(t, client.sent)
}
