// Package cli содержит команды консольного клиента.
package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophnotes/internal/client/auth"
	"github.com/iudanet/gophnotes/internal/client/cache"
	"github.com/iudanet/gophnotes/internal/client/iocli"
	"github.com/iudanet/gophnotes/internal/client/resolve"
	"github.com/iudanet/gophnotes/internal/client/save"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/client/sync"
)

// Cli связывает команды с сервисами клиента
type Cli struct {
	io        iocli.IO
	auth      auth.Service
	manager   *sync.Manager
	scheduler *save.Scheduler
	resolver  *resolve.Resolver
	tree      *cache.Tree
	notes     storage.NotesStorage
}

// New создает CLI поверх собранных сервисов
func New(
	io iocli.IO,
	authService auth.Service,
	manager *sync.Manager,
	scheduler *save.Scheduler,
	resolver *resolve.Resolver,
	tree *cache.Tree,
	notes storage.NotesStorage,
) *Cli {
	return &Cli{
		io:        io,
		auth:      authService,
		manager:   manager,
		scheduler: scheduler,
		resolver:  resolver,
		tree:      tree,
		notes:     notes,
	}
}

// persistTree сохраняет снимок кэша заметок после мутаций.
// Ошибка записи не фатальна: кэш остается согласованным в памяти.
func (c *Cli) persistTree(ctx context.Context) {
	if err := c.notes.SaveNotes(ctx, c.tree.Export()); err != nil {
		c.io.Printf("warning: failed to persist notes cache: %v\n", err)
	}
}

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("GophNotes Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gophnotes [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: gophnotes-client.db)")
	fmt.Println("  --offline        Do not contact the server; queue all changes locally")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Register new user")
	fmt.Println("  login                    Login to server")
	fmt.Println("  logout                   Logout and drop the local session")
	fmt.Println("  status                   Show session and sync queue status")
	fmt.Println("  sync                     Drain the pending operations queue")
	fmt.Println("  failed                   Show operations that exhausted their retries")
	fmt.Println("  note add [parent-id]     Create a note")
	fmt.Println("  note list [parent-id]    List notes under a parent (root by default)")
	fmt.Println("  note show <id>           Show note content")
	fmt.Println("  note edit <id>           Edit note content (versioned save)")
	fmt.Println("  note rm <id>             Delete a note")
	fmt.Println("  task add                 Create a task")
	fmt.Println("  task done <id>           Mark a task as done")
	fmt.Println("  task rm <id>             Delete a task")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gophnotes register")
	fmt.Println("  gophnotes login")
	fmt.Println("  gophnotes note add")
	fmt.Println("  gophnotes --offline note add")
	fmt.Println("  gophnotes note edit b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  gophnotes sync")
	fmt.Println("  gophnotes --server https://notes.example.com login")
}
