package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elvin52/quran-quiz-sub001/internal/config"
	"github.com/elvin52/quran-quiz-sub001/internal/delivery/telegram"
	"github.com/elvin52/quran-quiz-sub001/internal/grammar"
	"github.com/elvin52/quran-quiz-sub001/internal/infra/postgres"
	pgrepo "github.com/elvin52/quran-quiz-sub001/internal/infra/postgres/repository"
	"github.com/elvin52/quran-quiz-sub001/internal/logger"
	"github.com/elvin52/quran-quiz-sub001/internal/repository"
	"github.com/elvin52/quran-quiz-sub001/internal/service"
	"github.com/elvin52/quran-quiz-sub001/internal/storage"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("telegram auth failed", zap.Error(err))
	}
	zlog.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "quiz", Description: "Start a grammar quiz"},
		{Command: "progress", Description: "Show your progress"},
		{Command: "settings", Description: "Quiz preferences"},
		{Command: "cancel", Description: "Abandon the current quiz"},
		{Command: "help", Description: "How the quiz works"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zlog.Fatal("database url missing", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	corpusRepo, err := repository.NewCorpusRepository(cfg.CorpusPath)
	if err != nil {
		zlog.Fatal("corpus load failed", zap.Error(err))
	}

	userRepo := pgrepo.NewUserRepository(pool)
	quizRepo := pgrepo.NewQuizRepository(pool)
	progressRepo := pgrepo.NewProgressRepository(pool)
	settingsRepo := pgrepo.NewSettingsRepository(pool)

	engine := grammar.NewEngine()
	questionService := service.NewQuestionService(corpusRepo, engine)

	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(quizRepo, progressRepo, settingsRepo, questionService)
	progressService := service.NewProgressService(progressRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	resetService := service.NewResetService(postgres.NewTransactor(pool))
	reminderService := service.NewReminderService(settingsRepo, progressService, zlog)

	handler := telegram.NewHandler(
		bot,
		zlog,
		userService,
		quizService,
		progressService,
		settingsService,
		resetService,
		storage.NewQuizStorage(),
	)

	reminderService.SetNotifier(telegram.NewNotifier(bot, zlog))
	go reminderService.Start(ctx)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("handler stopped", zap.Error(err))
	}

	zlog.Info("shutdown signal received")
}
