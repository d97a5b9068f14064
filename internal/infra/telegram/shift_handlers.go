// internal/infra/telegram/shift_handlers.go
package telegram

import (
	"fmt"
	"strings"
	"time"

	"shift_rotation_bot/internal/app"
	"shift_rotation_bot/internal/domain/rota"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const displayDateLayout = "Monday, January 2, 2006"

func RegisterShiftHandlers(b *telebot.Bot, rotaService *app.RotaService, baseLogger *logrus.Entry) {
	lookupLogger := baseLogger.WithField("handler_group", "shift_lookup")

	b.Handle("/day", func(c telebot.Context) error {
		logCtx := lookupLogger.WithField("command", "/day").WithField("sender_id", c.Sender().ID)

		arg := strings.TrimSpace(c.Message().Payload)
		if arg == "" {
			arg = "today"
		}
		date, err := ParseDateFlexible(arg, time.Now())
		if err != nil {
			logCtx.WithError(err).Info("Rejected /day date argument")
			return c.Send(err.Error())
		}

		dayNum, err := rotaService.DayNumber(date)
		if err != nil {
			logCtx.WithError(err).Error("Day number calculation failed")
			return c.Send("Something went wrong computing the day number. Please try again.")
		}

		logCtx.WithField("day_number", dayNum).Info("Processed /day command")
		return c.Send(fmt.Sprintf("%s is Day %d.", date.Format(displayDateLayout), dayNum))
	})

	b.Handle("/shift", func(c telebot.Context) error {
		logCtx := lookupLogger.WithField("command", "/shift").WithField("sender_id", c.Sender().ID)

		args := c.Args()
		if len(args) < 2 {
			return c.Send("Usage: /shift <date> <shift name>\nExample: /shift 2025-06-30 Gold 5")
		}
		return handleLookup(c, rotaService, logCtx, args[0], strings.Join(args[1:], " "))
	})

	// Plain "<date>; <shift>" messages work without a command prefix, the way
	// the old intranet form took its two fields.
	b.Handle(telebot.OnText, func(c telebot.Context) error {
		logCtx := lookupLogger.WithField("command", "text").WithField("sender_id", c.Sender().ID)

		text := c.Text()
		if !strings.Contains(text, ";") {
			return c.Send("Send `<date>; <shift>` (e.g. `today; Silver 2`) or use /help.",
				&telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
		}
		fieldParts := strings.SplitN(text, ";", 2)
		return handleLookup(c, rotaService, logCtx, strings.TrimSpace(fieldParts[0]), strings.TrimSpace(fieldParts[1]))
	})
}

func handleLookup(c telebot.Context, rotaService *app.RotaService, logCtx *logrus.Entry, dateArg, shiftArg string) error {
	date, err := ParseDateFlexible(dateArg, time.Now())
	if err != nil {
		logCtx.WithError(err).WithField("date_arg", dateArg).Info("Rejected lookup date argument")
		return c.Send(err.Error())
	}

	lookup, err := rotaService.Lookup(date, shiftArg)
	if err != nil {
		logCtx.WithError(err).Error("Shift lookup failed")
		return c.Send("Something went wrong with that lookup. Please try again.")
	}

	logCtx.WithFields(logrus.Fields{
		"day_number": lookup.DayNumber,
		"kind":       lookup.Result.Kind,
	}).Info("Processed shift lookup")
	return c.Send(renderLookup(lookup))
}

// renderLookup formats one lookup the way the old form displayed its result
// block: the echoed inputs, the day number, then the classification.
func renderLookup(l app.LookupResult) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "Date: %s\n", l.Date.Format(displayDateLayout))
	fmt.Fprintf(&msg, "Day Number: %d\n", l.DayNumber)
	fmt.Fprintf(&msg, "Shift: %s\n\n", l.RawShift)

	switch l.Result.Kind {
	case rota.KindCategory:
		fmt.Fprintf(&msg, "Shift type: %s", l.Result.Category)
	case rota.KindDescription:
		msg.WriteString(l.Result.Description)
	case rota.KindUnrecognized:
		fmt.Fprintf(&msg, "This is Day %d. For '%s', refer to the most updated scheduling details to determine the shift timing.",
			l.DayNumber, l.RawShift)
	case rota.KindFailure:
		fmt.Fprintf(&msg, "Could not determine the shift type: %s", l.Result.Reason)
	}
	return msg.String()
}
