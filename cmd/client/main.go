package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/streakbox/streakbox/internal/client/api"
	"github.com/streakbox/streakbox/internal/client/auth"
	"github.com/streakbox/streakbox/internal/client/batcher"
	"github.com/streakbox/streakbox/internal/client/cli"
	"github.com/streakbox/streakbox/internal/client/ingest"
	"github.com/streakbox/streakbox/internal/client/iocli"
	"github.com/streakbox/streakbox/internal/client/storage/boltdb"
	"github.com/streakbox/streakbox/internal/client/sync"
	"github.com/streakbox/streakbox/internal/client/tracker"
	"github.com/streakbox/streakbox/internal/dedup"
	"github.com/streakbox/streakbox/internal/mailbox"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "streakbox-client.db", "Path to local database")
	mailboxDir := flag.String("mailbox", "", "Mailbox directory for cross-process result drops (empty disables)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Логи уходят в stderr, чтобы не мешаться с выводом команд
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(*serverURL)

	// Собираем сервисы. Auth service одновременно является источником
	// токенов для sync engine.
	authService := auth.NewService(apiClient, boltStorage, logger)

	// Восстанавливаем durable множество неподтвержденных записей:
	// без него sweep после рестарта не увидит, что дослать
	syncTracker := tracker.New(boltStorage, logger)
	if err := syncTracker.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore sync state: %v\n", err)
		os.Exit(1)
	}
	syncService := sync.NewService(
		apiClient,
		boltStorage,
		boltStorage,
		boltStorage,
		syncTracker,
		authService,
		logger,
	)

	// Принятые записи копятся в пачку и уходят через push;
	// в офлайне роутер кладет их в durable очередь.
	b := batcher.New(syncService.PushBatch, logger)
	defer b.Stop(ctx)

	router := sync.NewRouter(syncService, b, boltStorage, logger)

	ingestor := ingest.NewActor(
		boltStorage,
		dedup.New(0, 0),
		syncTracker,
		router,
		ingest.NewNotifier(),
		logger,
	)

	var mb *mailbox.Mailbox
	if *mailboxDir != "" {
		mb = mailbox.New(*mailboxDir, logger)
	}

	c := cli.New(iocli.NewStdio(), authService, boltStorage, ingestor, syncService, mb, logger)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("StreakBox Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
