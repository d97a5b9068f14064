package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shift_rotation_bot/internal/app"
	"shift_rotation_bot/internal/infra/config"
	"shift_rotation_bot/internal/infra/logger"
	"shift_rotation_bot/internal/infra/scheduler"
	itelegram "shift_rotation_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Shift Rotation Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.WithFields(map[string]interface{}{
		"anchor_date":       cfg.AnchorDate.Format("2006-01-02"),
		"anchor_day_number": cfg.AnchorDayNumber,
		"gold_scheme":       cfg.GoldScheme,
		"special_periods":   len(cfg.BlueSpecialPeriods),
	}).Info("Configuration loaded")

	// Build the immutable rotation rule set; a defective table or anchor is a
	// startup failure, never a per-request surprise.
	rules := cfg.RuleSet()
	rotaService, err := app.NewRotaService(rules, logger.Get().WithField("component", "rota_service"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Rotation rule set rejected")
	}
	mainLogger.Info("Rota service initialized")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(map[string]interface{}{
					"message": c.Text(),
					"sender":  c.Sender().ID,
					"chat":    c.Chat().ID,
				})
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	telegramClient := itelegram.NewTelebotAdapter(bot)
	announceService := app.NewAnnounceService(
		rules,
		telegramClient,
		logger.Get().WithField("component", "announce_service"),
		cfg.AnnounceChatID,
	)
	mainLogger.Info("Announce service initialized")

	announceScheduler := scheduler.NewAnnounceScheduler(
		announceService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecDayAnnounce,
	)
	if err := announceScheduler.Start(); err != nil {
		mainLogger.WithError(err).Fatal("Could not start announcement scheduler")
	}

	// Register Handlers
	handlerLogger := logger.Get().WithField("component", "telegram_handlers")
	itelegram.RegisterBotCommands(bot, handlerLogger)
	itelegram.RegisterShiftHandlers(bot, rotaService, handlerLogger)
	mainLogger.Info("Telegram handlers registered")

	mainLogger.Info("Application setup complete. Bot and scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	announceScheduler.Stop()
	bot.Stop()
	mainLogger.Info("Application shut down gracefully")
}
