package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	httpClient "github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/auth"
	"github.com/iudanet/gophnotes/internal/client/cache"
	"github.com/iudanet/gophnotes/internal/client/cli"
	"github.com/iudanet/gophnotes/internal/client/iocli"
	"github.com/iudanet/gophnotes/internal/client/resolve"
	"github.com/iudanet/gophnotes/internal/client/save"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/client/storage/boltdb"
	"github.com/iudanet/gophnotes/internal/client/storage/memory"
	syncengine "github.com/iudanet/gophnotes/internal/client/sync"
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
	dbPath := flag.String("db", "gophnotes-client.db", "Path to local database")
	offline := flag.Bool("offline", false, "Do not contact the server; queue all changes locally")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Основное хранилище — BoltDB; при сбое открытия деградируем
	// в in-memory режим, чтобы не терять работоспособность сессии.
	var kv storage.KV
	fallback := memory.New()
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database, running in-memory only", "error", err)
		kv = fallback
	} else {
		defer func() {
			if err := boltStorage.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
		kv = storage.NewFallbackKV(boltStorage, fallback, logger)
	}

	queueStore := storage.NewQueueStore(kv)
	sessionStore := storage.NewSessionStore(kv)
	notesStore := storage.NewNotesStore(kv)

	apiClient := httpClient.NewClient(*serverURL)
	authService := auth.NewService(apiClient, sessionStore)

	stdio := iocli.NewStdio()
	tree := cache.NewTree()

	notes, err := notesStore.LoadNotes(ctx)
	if err != nil {
		logger.Error("failed to load notes cache", "error", err)
	} else {
		tree.Load(notes)
	}

	notifier := cli.NewNotifier(stdio)
	manager := syncengine.NewManager(apiClient, queueStore, queueStore, authService, tree, notifier, logger)
	if err := manager.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore sync queue: %v\n", err)
		os.Exit(1)
	}
	defer manager.Destroy()

	if !*offline {
		manager.SetOnline(ctx, true)
	}

	scheduler := save.NewScheduler(apiClient, authService, tree, nil, logger)
	defer scheduler.Destroy()

	resolver := resolve.New(cli.NewChooser(stdio))

	c := cli.New(stdio, authService, manager, scheduler, resolver, tree, notesStore)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("GophNotes Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
