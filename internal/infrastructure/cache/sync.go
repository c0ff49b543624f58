package cache

import (
	"context"
	"sync"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/logging"
)

type commandKind int

const (
	cmdFullSnapshot commandKind = iota
	cmdIncrementalAllow
	cmdIncrementalDeny
	cmdSetDefaultPolicy
	cmdBarrier
)

func (k commandKind) String() string {
	switch k {
	case cmdFullSnapshot:
		return "full_snapshot"
	case cmdIncrementalAllow:
		return "incremental_allow"
	case cmdIncrementalDeny:
		return "incremental_deny"
	case cmdSetDefaultPolicy:
		return "set_default_policy"
	case cmdBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// command is one cache mutation shipped from the control context.
type command struct {
	kind    commandKind
	origin  entity.Origin
	policy  entity.PermissionState
	allowed []entity.Origin
	denied  []entity.Origin
	done    chan struct{}
}

// SyncChannel is the one-way propagation path from the control context to the
// cache. Commands are applied by a single consumer in enqueue order, each
// exactly once, and enqueueing never blocks the sender: the queue is
// unbounded and the consumer is woken through a non-blocking signal.
type SyncChannel struct {
	cache *Permissions

	mu    sync.Mutex
	queue []command
	wake  chan struct{}
}

// NewSyncChannel creates a sync channel feeding the given cache. Run must be
// started before enqueued commands become visible.
func NewSyncChannel(cache *Permissions) *SyncChannel {
	return &SyncChannel{
		cache: cache,
		wake:  make(chan struct{}, 1),
	}
}

// EnqueueFullSnapshot ships a replacement of both sets and the policy.
func (s *SyncChannel) EnqueueFullSnapshot(allowed, denied []entity.Origin, policy entity.PermissionState) {
	s.enqueue(command{kind: cmdFullSnapshot, allowed: allowed, denied: denied, policy: policy})
}

// EnqueueAllow ships a single-origin allow decision.
func (s *SyncChannel) EnqueueAllow(origin entity.Origin) {
	s.enqueue(command{kind: cmdIncrementalAllow, origin: origin})
}

// EnqueueDeny ships a single-origin deny decision.
func (s *SyncChannel) EnqueueDeny(origin entity.Origin) {
	s.enqueue(command{kind: cmdIncrementalDeny, origin: origin})
}

// EnqueueDefaultPolicy ships a default-policy change.
func (s *SyncChannel) EnqueueDefaultPolicy(policy entity.PermissionState) {
	s.enqueue(command{kind: cmdSetDefaultPolicy, policy: policy})
}

// Flush blocks until every command enqueued before the call has been applied,
// or the context is done. The consumer must be running.
func (s *SyncChannel) Flush(ctx context.Context) error {
	done := make(chan struct{})
	s.enqueue(command{kind: cmdBarrier, done: done})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SyncChannel) enqueue(c command) {
	s.mu.Lock()
	s.queue = append(s.queue, c)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run consumes commands until ctx is done. It is the single writer of the
// cache; call it from exactly one goroutine.
func (s *SyncChannel) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	for {
		batch := s.drain()
		if len(batch) == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.wake:
				continue
			}
		}

		for _, c := range batch {
			s.apply(c)
			if c.done != nil {
				close(c.done)
			} else {
				log.Trace().Str("command", c.kind.String()).Msg("cache sync command applied")
			}
		}
	}
}

func (s *SyncChannel) drain() []command {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.queue
	s.queue = nil
	return batch
}

func (s *SyncChannel) apply(c command) {
	switch c.kind {
	case cmdFullSnapshot:
		s.cache.ApplyFullSnapshot(c.allowed, c.denied, c.policy)
	case cmdIncrementalAllow:
		s.cache.ApplyIncrementalAllow(c.origin)
	case cmdIncrementalDeny:
		s.cache.ApplyIncrementalDeny(c.origin)
	case cmdSetDefaultPolicy:
		s.cache.ApplyDefaultPolicy(c.policy)
	}
}
