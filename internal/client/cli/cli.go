// Package cli реализует командный интерфейс клиента streakbox.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streakbox/streakbox/internal/client/auth"
	"github.com/streakbox/streakbox/internal/client/ingest"
	"github.com/streakbox/streakbox/internal/client/iocli"
	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/client/sync"
	"github.com/streakbox/streakbox/internal/mailbox"
)

type Cli struct {
	io          iocli.IO
	authService auth.Service
	results     storage.ResultStorage
	ingestor    *ingest.Actor
	syncService sync.Service
	mailbox     *mailbox.Mailbox
	logger      *slog.Logger
}

func New(
	io iocli.IO,
	authService auth.Service,
	results storage.ResultStorage,
	ingestor *ingest.Actor,
	syncService sync.Service,
	mb *mailbox.Mailbox,
	logger *slog.Logger,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		results:     results,
		ingestor:    ingestor,
		syncService: syncService,
		mailbox:     mb,
		logger:      logger,
	}
}

// Run выполняет команду и возвращает ошибку для exit-кода
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "submit":
		return c.runSubmit(ctx, args)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "share-write":
		return c.runShareWrite(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("Streakbox Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  streakbox [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: streakbox-client.db)")
	fmt.Println("  --mailbox PATH     Path to shared mailbox directory")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Register new account")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout (delete local session)")
	fmt.Println("  status                  Show authentication and sync status")
	fmt.Println("  submit <shared text>    Parse and save a puzzle result")
	fmt.Println("  list                    List saved puzzle results")
	fmt.Println("  delete <id>             Delete a result (tombstone, syncs to other devices)")
	fmt.Println("  sync                    Synchronize local results with server")
	fmt.Println("  watch                   Watch the shared mailbox and ingest incoming results")
	fmt.Println("  share-write <text>      Write a shared text into the mailbox (producer side)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  streakbox register")
	fmt.Println("  streakbox login")
	fmt.Println("  streakbox submit 'Wordle 1,412 4/6'")
	fmt.Println("  streakbox list")
	fmt.Println("  streakbox sync")
	fmt.Println("  streakbox --server https://example.com login")
}
