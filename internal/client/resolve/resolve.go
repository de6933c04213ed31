package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophnotes/internal/models"
)

// Strategy — именованная стратегия разрешения конфликта версий
type Strategy string

// Поддерживаемые стратегии
const (
	StrategyClientWins   Strategy = "client-wins"   // клиентская версия verbatim
	StrategyServerWins   Strategy = "server-wins"   // серверная версия verbatim
	StrategyLastModified Strategy = "last-modified" // побеждает более поздний updatedAt
	StrategyMerge        Strategy = "merge"         // полевое слияние (last-resort эвристика)
	StrategyUserChoice   Strategy = "user-choice"   // решает пользователь через Chooser
)

// DefaultStrategy используется автоматическими путями разрешения
const DefaultStrategy = StrategyLastModified

// MergeSeparator — видимый маркер, разделяющий конкурирующие версии
// контента при слиянии. Слияние — это конкатенация, а не настоящий merge;
// маркер делает результат очевидным для пользователя.
const MergeSeparator = "\n\n--- conflicting version ---\n\n"

// Ошибки разрешения конфликтов
var (
	// ErrUnknownStrategy indicates an unsupported strategy name
	ErrUnknownStrategy = errors.New("unknown conflict resolution strategy")

	// ErrNoChooser indicates that user-choice was requested without a Chooser
	ErrNoChooser = errors.New("user-choice strategy requires a chooser")
)

// Conflict — пара конкурирующих снимков одного элемента
type Conflict struct {
	Client *models.Item // версия клиента
	Server *models.Item // версия сервера
}

//go:generate moq -out chooser_mock.go . Chooser

// Chooser is the UI boundary for the user-choice strategy.
// Choose blocks until the user answers or ctx is done.
type Chooser interface {
	Choose(ctx context.Context, conflict Conflict) (*models.Item, error)
}

// Resolver применяет стратегии разрешения. Сам по себе stateless:
// ему дают конфликтующие снимки, он возвращает результат.
type Resolver struct {
	chooser Chooser
}

// New creates a resolver. chooser may be nil if user-choice is never used.
func New(chooser Chooser) *Resolver {
	return &Resolver{chooser: chooser}
}

// Resolve возвращает разрешенный элемент для пары (client, server).
// Все стратегии, кроме user-choice, тотальны и детерминированы.
func (r *Resolver) Resolve(ctx context.Context, c Conflict, strategy Strategy) (*models.Item, error) {
	// Вырожденные случаи: одной из сторон нет
	if c.Client == nil && c.Server == nil {
		return nil, fmt.Errorf("nothing to resolve: both sides are nil")
	}
	if c.Client == nil {
		return c.Server.Clone(), nil
	}
	if c.Server == nil {
		return c.Client.Clone(), nil
	}

	switch strategy {
	case StrategyClientWins:
		return c.Client.Clone(), nil

	case StrategyServerWins:
		return c.Server.Clone(), nil

	case StrategyLastModified:
		return resolveLastModified(c), nil

	case StrategyMerge:
		return resolveMerge(c), nil

	case StrategyUserChoice:
		if r.chooser == nil {
			return nil, ErrNoChooser
		}
		return r.chooser.Choose(ctx, c)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// resolveLastModified выбирает сторону с более поздним временем изменения.
// При равенстве детерминированно побеждает сервер, чтобы повторные вызовы
// не осциллировали.
func resolveLastModified(c Conflict) *models.Item {
	if c.Client.LastModified().After(c.Server.LastModified()) {
		return c.Client.Clone()
	}
	return c.Server.Clone()
}

// resolveMerge выполняет полевое слияние:
//   - title: при расхождении побеждает клиентский
//   - content: если обе стороны непусты и различаются — конкатенация
//     через MergeSeparator; пустой контент никогда не побеждает непустой
//   - updatedAt: max(client, server)
func resolveMerge(c Conflict) *models.Item {
	result := c.Server.Clone()
	result.Title = c.Client.Title

	switch {
	case c.Client.Content == "":
		result.Content = c.Server.Content
	case c.Server.Content == "":
		result.Content = c.Client.Content
	case c.Client.Content == c.Server.Content:
		result.Content = c.Client.Content
	default:
		result.Content = c.Client.Content + MergeSeparator + c.Server.Content
	}

	if c.Client.UpdatedAt.After(result.UpdatedAt) {
		result.UpdatedAt = c.Client.UpdatedAt
	}

	return result
}
