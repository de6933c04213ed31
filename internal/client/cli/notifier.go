package cli

import (
	"context"

	"github.com/iudanet/gophnotes/internal/client/iocli"
	"github.com/iudanet/gophnotes/internal/client/resolve"
	"github.com/iudanet/gophnotes/internal/models"
)

// Notifier печатает события очереди синхронизации в терминал
type Notifier struct {
	io iocli.IO
}

// NewNotifier создает терминальный notifier для очереди
func NewNotifier(io iocli.IO) *Notifier {
	return &Notifier{io: io}
}

// SyncFailed сообщает об операции, исчерпавшей все попытки
func (n *Notifier) SyncFailed(item models.FailedSyncItem) {
	n.io.Printf("sync failed permanently: %s operation %s (%d attempts), see 'gophnotes failed'\n",
		item.Operation.Type, item.ID, item.Attempts)
}

// ConflictDetected сообщает о конфликте версий из очереди
func (n *Notifier) ConflictDetected(conflict models.VersionConflict) {
	n.io.Printf("version conflict on item %s: local v%d vs server v%d, edit the note to resolve\n",
		conflict.ItemID, conflict.ClientVersion, conflict.ServerVersion)
}

// Chooser разрешает конфликты через терминальный диалог
type Chooser struct {
	io iocli.IO
}

// NewChooser создает терминальный chooser для стратегии user-choice
func NewChooser(io iocli.IO) *Chooser {
	return &Chooser{io: io}
}

// Choose показывает обе версии и возвращает выбранную пользователем
func (ch *Chooser) Choose(ctx context.Context, conflict resolve.Conflict) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if conflict.Server != nil {
		ch.io.Printf("\n--- server version (v%d) ---\n%s\n", conflict.Server.Version, conflict.Server.Content)
	}
	if conflict.Client != nil {
		ch.io.Printf("\n--- your version ---\n%s\n\n", conflict.Client.Content)
	}

	keepClient, err := ch.io.Confirm("Keep your version?")
	if err != nil {
		return nil, err
	}
	if keepClient {
		return conflict.Client.Clone(), nil
	}
	return conflict.Server.Clone(), nil
}
