// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func RegisterBotCommands(b *telebot.Bot, baseLogger *logrus.Entry) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /start command")

		return c.Send("Hi! I calculate the rotation day number (1-4) for any date, " +
			"and the shift type (Early/Middle/Late) for a given line and date.\n\n" +
			"Try: /shift today Gold 5\n\nUse /help for the full list of commands.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/help").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /help command")

		var helpText strings.Builder
		helpText.WriteString("Available commands:\n\n")
		helpText.WriteString("`/day [date]`\n - Show the day number for a date (defaults to today).\n\n")
		helpText.WriteString("`/shift <date> <shift>`\n - Show the shift type, e.g. `/shift 2025-06-30 Blue 3-1`.\n\n")
		helpText.WriteString("You can also just send `<date>; <shift>` as a plain message.\n\n")
		helpText.WriteString("Dates: YYYY-MM-DD, MM/DD/YYYY, 'Jan 2 2026', today, tomorrow, yesterday.\n\n")
		helpText.WriteString("Lines I know: Gold, Silver, Yellow, Purple, Blue, Bronze, Green, Gray, MIST SCU, MIST Transplant. ")
		helpText.WriteString("For anything else I can still tell you the day number; check the published schedule for the timing.")
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})
}
