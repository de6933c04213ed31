package sync

import (
	"context"

	"github.com/iudanet/gophnotes/internal/models"
)

//go:generate moq -out notifier_mock.go . Notifier TokenProvider

// Notifier is the UI boundary for queue events. The engine never renders
// anything itself; it only reports.
type Notifier interface {
	// SyncFailed вызывается, когда операция исчерпала все попытки
	// и перемещена в failed log
	SyncFailed(item models.FailedSyncItem)

	// ConflictDetected вызывается, когда сервер отклонил операцию
	// из-за несовпадения версий
	ConflictDetected(conflict models.VersionConflict)
}

// TokenProvider supplies the access token for network calls
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// noopNotifier используется, когда UI не подписан на события
type noopNotifier struct{}

func (noopNotifier) SyncFailed(models.FailedSyncItem)        {}
func (noopNotifier) ConflictDetected(models.VersionConflict) {}
