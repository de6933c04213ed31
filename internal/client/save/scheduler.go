// Package save реализует планировщик сохранений редактора.
//
// Правки накапливаются локально и превращаются в сетевую запись только
// по событию-намерению: переключение элемента, потеря фокуса, Ctrl+S,
// таймер бездействия или страховочный таймер. UI наблюдает за машиной
// состояний через Listener.
package save

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	httpClient "github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/cache"
	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

// Тайминги планировщика по умолчанию.
const (
	defaultInactivityDelay = 30 * time.Second
	defaultSafetyDelay     = 2 * time.Minute
	defaultDeferWindow     = 500 * time.Millisecond
	defaultSaveTimeout     = 30 * time.Second
)

// Timings задает интервалы планировщика. Нулевые поля заменяются
// значениями по умолчанию.
type Timings struct {
	// Inactivity — пауза в наборе, после которой правка сохраняется.
	// Сбрасывается каждой новой правкой.
	Inactivity time.Duration
	// Safety — страховочный таймер. Взводится первой правкой
	// и не сбрасывается последующими: при непрерывном наборе правка
	// всё равно будет сохранена не позже чем через этот интервал.
	Safety time.Duration
	// DeferWindow — минимальный зазор между успешными сохранениями.
	// Намерение, пришедшее раньше, откладывается, а не отбрасывается.
	DeferWindow time.Duration
	// SaveTimeout — верхняя граница одного сетевого сохранения.
	SaveTimeout time.Duration
}

// DefaultTimings возвращает интервалы продакшен-конфигурации.
func DefaultTimings() Timings {
	return Timings{
		Inactivity:  defaultInactivityDelay,
		Safety:      defaultSafetyDelay,
		DeferWindow: defaultDeferWindow,
		SaveTimeout: defaultSaveTimeout,
	}
}

func (t Timings) withDefaults() Timings {
	if t.Inactivity <= 0 {
		t.Inactivity = defaultInactivityDelay
	}
	if t.Safety <= 0 {
		t.Safety = defaultSafetyDelay
	}
	if t.DeferWindow <= 0 {
		t.DeferWindow = defaultDeferWindow
	}
	if t.SaveTimeout <= 0 {
		t.SaveTimeout = defaultSaveTimeout
	}
	return t
}

// Intent — именованное событие, разрешающее сохранение текущей правки.
type Intent string

// Источники намерений. Планировщик не знает, откуда они приходят:
// UI транслирует свои события в этот ограниченный набор.
const (
	IntentItemSwitch Intent = "item-switch"
	IntentTabHidden  Intent = "tab-hidden"
	IntentWindowBlur Intent = "window-blur"
	IntentPageHide   Intent = "page-hide"
	IntentShortcut   Intent = "shortcut"
	IntentForceSave  Intent = "force-save"
	IntentInactivity Intent = "inactivity"
	IntentSafety     Intent = "safety"
)

//go:generate moq -out scheduler_mock.go . Listener TokenProvider

// Listener is the UI boundary for scheduler events.
// Implementations must not call back into the Scheduler.
type Listener interface {
	// SaveStateChanged вызывается при каждой смене состояния
	SaveStateChanged(state models.SaveState)

	// ConflictDetected вызывается при переходе в состояние conflict
	ConflictDetected(conflict models.VersionConflict)
}

// TokenProvider supplies the access token for save requests
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

type noopListener struct{}

func (noopListener) SaveStateChanged(models.SaveState)       {}
func (noopListener) ConflictDetected(models.VersionConflict) {}

// saveOp — одно сохранение в полете. Флаг cancelled позволяет
// отбросить поздний ответ сети от вытесненной операции.
type saveOp struct {
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

func (op *saveOp) abort() {
	op.cancelled.Store(true)
	op.cancel()
}

// Scheduler владеет текущей PendingEdit и состоянием сохранения.
// Ровно один экземпляр на editor-сессию; после Destroy не используется.
type Scheduler struct {
	client   httpClient.ClientAPI
	tokens   TokenProvider
	tree     *cache.Tree
	listener Listener
	logger   *slog.Logger
	timings  Timings

	mu          sync.Mutex
	state       models.SaveState
	pending     *models.PendingEdit
	conflict    *models.VersionConflict
	inFlight    *saveOp
	inactivity  *time.Timer
	safety      *time.Timer
	deferTimer  *time.Timer
	lastSaved   time.Time
	safetyArmed bool
	destroyed   bool
}

// NewScheduler создает планировщик с таймингами по умолчанию.
// listener может быть nil.
func NewScheduler(
	client httpClient.ClientAPI,
	tokens TokenProvider,
	tree *cache.Tree,
	listener Listener,
	logger *slog.Logger,
) *Scheduler {
	return NewSchedulerWithTimings(client, tokens, tree, listener, logger, DefaultTimings())
}

// NewSchedulerWithTimings создает планировщик с заданными интервалами.
func NewSchedulerWithTimings(
	client httpClient.ClientAPI,
	tokens TokenProvider,
	tree *cache.Tree,
	listener Listener,
	logger *slog.Logger,
	timings Timings,
) *Scheduler {
	if listener == nil {
		listener = noopListener{}
	}
	return &Scheduler{
		client:   client,
		tokens:   tokens,
		tree:     tree,
		listener: listener,
		logger:   logger,
		timings:  timings.withDefaults(),
		state:    models.SaveStateIdle,
	}
}

// Edit записывает правку и взводит таймеры. Сеть не трогается.
// Каждая правка перезаписывает предыдущую: сохранится последняя.
func (s *Scheduler) Edit(edit models.PendingEdit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}

	if s.state == models.SaveStateConflict {
		// Конфликт блокирует сохранения, но не набор: правка копится
		// в pending и уйдет на сервер при ForceClientVersion
		s.pending = edit.Clone()
		return
	}

	s.pending = edit.Clone()
	s.setState(models.SaveStatePending)

	if s.inactivity == nil {
		s.inactivity = time.AfterFunc(s.timings.Inactivity, func() {
			s.Trigger(context.Background(), IntentInactivity)
		})
	} else {
		s.inactivity.Reset(s.timings.Inactivity)
	}

	if !s.safetyArmed {
		s.safetyArmed = true
		s.safety = time.AfterFunc(s.timings.Safety, func() {
			s.Trigger(context.Background(), IntentSafety)
		})
	}
}

// Trigger доставляет событие-намерение. Если есть несохраненная правка,
// она отправляется на сервер немедленно. Ошибки не возвращаются:
// исход виден через State и Listener.
func (s *Scheduler) Trigger(ctx context.Context, intent Intent) {
	s.mu.Lock()

	if s.destroyed || s.pending == nil || s.state == models.SaveStateConflict {
		s.mu.Unlock()
		return
	}

	if s.inFlight != nil {
		if intent != IntentForceSave {
			// Сохранение уже в полете: намерение коалесцируется,
			// следующее событие отправит свежую правку
			s.mu.Unlock()
			return
		}
		// force-save вытесняет текущую операцию
		s.inFlight.abort()
		s.inFlight = nil
	}

	if since := time.Since(s.lastSaved); since < s.timings.DeferWindow {
		// Слишком рано после успешного сохранения: откладываем
		remaining := s.timings.DeferWindow - since
		if s.deferTimer != nil {
			s.deferTimer.Stop()
		}
		s.deferTimer = time.AfterFunc(remaining, func() {
			s.Trigger(context.Background(), intent)
		})
		s.mu.Unlock()
		return
	}

	s.stopTimers()
	edit := s.pending.Clone()

	opCtx, cancel := context.WithTimeout(ctx, s.timings.SaveTimeout)
	op := &saveOp{cancel: cancel}
	s.inFlight = op
	s.setState(models.SaveStateSaving)
	s.mu.Unlock()

	s.logger.Debug("save triggered", "intent", string(intent), "item_id", edit.ID)
	s.runSave(opCtx, op, edit)
}

// runSave выполняет сетевое сохранение и применяет исход.
func (s *Scheduler) runSave(ctx context.Context, op *saveOp, edit *models.PendingEdit) {
	defer op.cancel()

	resp, err := s.save(ctx, edit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if op.cancelled.Load() {
		// Операция вытеснена: поздний ответ не применяется
		return
	}
	s.inFlight = nil

	if err == nil {
		s.tree.ApplyContent(edit.ID, edit.Content, edit.Direction, resp.Version)
		s.lastSaved = time.Now()
		if s.pending != nil && *s.pending == *edit {
			s.pending = nil
			s.setState(models.SaveStateSaved)
		} else {
			// Во время сохранения пришла новая правка
			s.setState(models.SaveStatePending)
		}
		return
	}

	if conflictErr, ok := httpClient.AsConflict(err); ok {
		conflict := conflictErr.Conflict
		s.conflict = &conflict
		s.setState(models.SaveStateConflict)
		s.logger.Warn("save rejected, version conflict",
			"item_id", conflict.ItemID,
			"client_version", conflict.ClientVersion,
			"server_version", conflict.ServerVersion,
		)
		s.listener.ConflictDetected(conflict)
		return
	}

	// Правка сохраняется локально, повтор — по следующему намерению
	s.setState(models.SaveStateError)
	s.logger.Error("save failed", "item_id", edit.ID, "error", err)
}

func (s *Scheduler) save(ctx context.Context, edit *models.PendingEdit) (*api.ItemPayload, error) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	req := api.ContentPatchRequest{
		Content:         edit.Content,
		Direction:       edit.Direction,
		ExpectedVersion: edit.ExpectedVersion,
	}
	return s.client.PatchContent(ctx, token, edit.ID, req)
}

// AcceptServerVersion разрешает конфликт в пользу сервера: правка
// отбрасывается, кэш принимает серверное состояние.
func (s *Scheduler) AcceptServerVersion() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflict == nil {
		return ErrNoConflict
	}

	if item := s.conflict.ServerItem; item != nil {
		s.tree.ApplyContent(item.ID, item.Content, item.Direction, item.Version)
	}
	s.pending = nil
	s.conflict = nil
	s.setState(models.SaveStateIdle)
	return nil
}

// ForceClientVersion разрешает конфликт в пользу клиента: правка
// отправляется повторно с ожидаемой версией, которую сообщил сервер.
func (s *Scheduler) ForceClientVersion(ctx context.Context) error {
	s.mu.Lock()
	if s.conflict == nil {
		s.mu.Unlock()
		return ErrNoConflict
	}
	if s.pending == nil {
		s.mu.Unlock()
		return ErrNothingToSave
	}

	s.pending.ExpectedVersion = s.conflict.ServerVersion
	s.conflict = nil
	s.setState(models.SaveStatePending)
	s.mu.Unlock()

	s.Trigger(ctx, IntentForceSave)
	return nil
}

// Conflict возвращает текущий неразрешенный конфликт, если он есть.
func (s *Scheduler) Conflict() *models.VersionConflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflict == nil {
		return nil
	}
	c := *s.conflict
	return &c
}

// Reset отбрасывает правку и возвращает планировщик в idle.
// Сохранение в полете вытесняется: его ответ будет проигнорирован.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Scheduler) reset() {
	if s.inFlight != nil {
		s.inFlight.abort()
		s.inFlight = nil
	}
	s.stopTimers()
	if s.deferTimer != nil {
		s.deferTimer.Stop()
		s.deferTimer = nil
	}
	s.pending = nil
	s.conflict = nil
	s.setState(models.SaveStateIdle)
}

// Destroy останавливает таймеры и запрещает дальнейшее использование.
func (s *Scheduler) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	s.destroyed = true
}

// State возвращает текущее состояние машины сохранений.
func (s *Scheduler) State() models.SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HasUnsavedChanges сообщает, есть ли несохраненная правка.
func (s *Scheduler) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// stopTimers гасит оба таймера; вызывается под мьютексом.
func (s *Scheduler) stopTimers() {
	if s.inactivity != nil {
		s.inactivity.Stop()
	}
	if s.safety != nil {
		s.safety.Stop()
		s.safety = nil
	}
	s.safetyArmed = false
}

// setState меняет состояние и уведомляет слушателя; вызывается под мьютексом.
func (s *Scheduler) setState(state models.SaveState) {
	if s.state == state {
		return
	}
	s.state = state
	s.listener.SaveStateChanged(state)
}
