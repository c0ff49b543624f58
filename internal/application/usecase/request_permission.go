package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/webnotify/internal/application/port"
	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
	"github.com/bnema/webnotify/internal/logging"
)

// pendingKey correlates a prompt with the session that asked for it.
type pendingKey struct {
	session   entity.SessionHandle
	requestID int
}

type pendingRequest struct {
	origin entity.Origin
	timer  *time.Timer
}

// RequestPermissionUseCase resolves permission queries and drives the prompt
// flow for notification permission requests.
//
// QueryPermission is dispatch-context safe: it reads the cache only.
// RequestPermission runs on the control context; between presenting the
// decision surface and receiving its outcome the use case holds no locks, so
// other queries, decisions and prompts proceed freely. Multiple prompts may
// be outstanding at once; a decision for one origin never delays another.
type RequestPermissionUseCase struct {
	origins    *ManageOriginsUseCase
	cache      *cache.Permissions
	resultSink port.PermissionResultSink
	names      port.DisplayNameResolver

	prompterMu sync.RWMutex
	prompter   port.PermissionPrompter

	// promptTimeout > 0 retires an unanswered prompt as a dismissal so a
	// pending request cannot be retained forever.
	promptTimeout time.Duration

	mu      sync.Mutex
	pending map[pendingKey]*pendingRequest

	dismissed atomic.Int64
}

// NewRequestPermissionUseCase creates the permission request use case.
// promptTimeout of zero disables the idle-dismiss timer.
func NewRequestPermissionUseCase(
	origins *ManageOriginsUseCase,
	permCache *cache.Permissions,
	prompter port.PermissionPrompter,
	resultSink port.PermissionResultSink,
	names port.DisplayNameResolver,
	promptTimeout time.Duration,
) *RequestPermissionUseCase {
	return &RequestPermissionUseCase{
		origins:       origins,
		cache:         permCache,
		prompter:      prompter,
		resultSink:    resultSink,
		names:         names,
		promptTimeout: promptTimeout,
		pending:       make(map[pendingKey]*pendingRequest),
	}
}

// SetPrompter sets the decision surface. This can be called after
// initialization when the UI layer is available.
func (uc *RequestPermissionUseCase) SetPrompter(prompter port.PermissionPrompter) {
	uc.prompterMu.Lock()
	defer uc.prompterMu.Unlock()
	uc.prompter = prompter
}

func (uc *RequestPermissionUseCase) getPrompter() port.PermissionPrompter {
	uc.prompterMu.RLock()
	defer uc.prompterMu.RUnlock()
	return uc.prompter
}

// QueryPermission answers a permission check from the cache. It never
// consults the store and never blocks on the control context.
func (uc *RequestPermissionUseCase) QueryPermission(origin entity.Origin) entity.PermissionState {
	return uc.cache.Query(origin)
}

// RequestPermission handles an explicit permission request from a page or
// worker session. When the origin already resolves to allow or block, the
// completion notice is delivered immediately and no prompt is shown.
// Otherwise a prompt is presented and the request stays pending until the
// user responds or the surface is dismissed; either way exactly one
// completion notice reaches the session.
func (uc *RequestPermissionUseCase) RequestPermission(
	ctx context.Context,
	origin entity.Origin,
	session entity.SessionHandle,
	requestID int,
) {
	ctx = logging.WithComponent(ctx, "permission")
	ctx = logging.WithOrigin(ctx, string(origin))
	ctx = logging.WithSession(ctx, string(session))
	log := logging.FromContext(ctx).With().Int("request_id", requestID).Logger()
	ctx = logging.WithContext(ctx, log)

	// Resolve through the control-side authority: the store for persistent
	// profiles, the session cache view for ephemeral ones.
	setting, err := uc.origins.ContentSetting(ctx, origin)
	if err != nil {
		// The session must not hang waiting for a decision that cannot be
		// resolved; answer with the current (ask) state and complete.
		log.Warn().Err(err).Msg("failed to resolve content setting, completing request without prompt")
		uc.resultSink.DeliverPermissionResult(ctx, session, requestID)
		return
	}

	if setting != entity.PermissionAsk {
		log.Debug().Str("setting", string(setting)).Msg("permission already decided, completing request")
		uc.resultSink.DeliverPermissionResult(ctx, session, requestID)
		return
	}

	key := pendingKey{session: session, requestID: requestID}

	uc.mu.Lock()
	if _, exists := uc.pending[key]; exists {
		uc.mu.Unlock()
		log.Warn().Msg("duplicate permission request for outstanding request id, ignoring")
		return
	}
	req := &pendingRequest{origin: origin}
	uc.pending[key] = req
	uc.mu.Unlock()

	prompter := uc.getPrompter()
	if prompter == nil {
		log.Warn().Msg("no decision surface available, dismissing request")
		uc.completePending(ctx, key, port.PromptDismissed)
		return
	}

	if uc.promptTimeout > 0 {
		req.timer = time.AfterFunc(uc.promptTimeout, func() {
			uc.completePending(ctx, key, port.PromptDismissed)
		})
	}

	displayName := uc.names.DisplayNameForOrigin(ctx, origin)
	log.Debug().Str("display_name", displayName).Msg("showing permission prompt")

	prompter.ShowPermissionPrompt(ctx, origin, displayName, func(outcome port.PromptOutcome) {
		uc.completePending(ctx, key, outcome)
	})
}

// completePending retires the pending request and handles the outcome. A
// request retires exactly once; a second outcome for the same request id is
// caller misuse and is logged and ignored, never delivered twice.
func (uc *RequestPermissionUseCase) completePending(ctx context.Context, key pendingKey, outcome port.PromptOutcome) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	req, ok := uc.pending[key]
	if !ok {
		uc.mu.Unlock()
		// ctx already carries the request fields from RequestPermission.
		log.Warn().
			Str("outcome", outcome.String()).
			Msg("outcome for retired permission request, ignoring")
		return
	}
	delete(uc.pending, key)
	uc.mu.Unlock()

	if req.timer != nil {
		req.timer.Stop()
	}

	switch outcome {
	case port.PromptAccepted:
		log.Info().Msg("notification permission granted")
		if err := uc.origins.GrantPermission(ctx, req.origin); err != nil {
			log.Warn().Err(err).Msg("failed to record granted permission")
		}
	case port.PromptDenied:
		log.Info().Msg("notification permission denied")
		if err := uc.origins.DenyPermission(ctx, req.origin); err != nil {
			log.Warn().Err(err).Msg("failed to record denied permission")
		}
	case port.PromptDismissed:
		uc.dismissed.Add(1)
		log.Info().Msg("notification permission prompt dismissed")
	}

	uc.resultSink.DeliverPermissionResult(ctx, key.session, key.requestID)
}

// PendingCount returns the number of outstanding prompts.
func (uc *RequestPermissionUseCase) PendingCount() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.pending)
}

// DismissedCount returns how many prompts were closed without a choice.
func (uc *RequestPermissionUseCase) DismissedCount() int64 {
	return uc.dismissed.Load()
}
