package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/domain/repository"
	"github.com/bnema/webnotify/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/webnotify/internal/logging"
)

const defaultPolicyKey = "notifications.default_policy"

type decisionStore struct {
	db      *sql.DB
	queries *sqlc.Queries
}

// NewDecisionStore creates a SQLite-backed notification decision store.
func NewDecisionStore(db *sql.DB) repository.DecisionStore {
	return &decisionStore{db: db, queries: sqlc.New(db)}
}

func (s *decisionStore) DefaultPolicy(ctx context.Context) (entity.PermissionState, error) {
	value, err := s.queries.GetSetting(ctx, defaultPolicyKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.FactoryDefaultPolicy, nil
		}
		return "", fmt.Errorf("read default policy: %w", err)
	}
	return entity.NormalizePolicy(value), nil
}

func (s *decisionStore) SetDefaultPolicy(ctx context.Context, policy entity.PermissionState) error {
	log := logging.FromContext(ctx)

	// An unset or unknown value is stored as the factory default literal so a
	// later read never has to disambiguate a sentinel.
	normalized := entity.NormalizePolicy(string(policy))
	log.Debug().Str("policy", string(normalized)).Msg("setting default notification policy")

	if err := s.queries.UpsertSetting(ctx, sqlc.UpsertSettingParams{
		Key:   defaultPolicyKey,
		Value: string(normalized),
	}); err != nil {
		return fmt.Errorf("write default policy: %w", err)
	}
	return nil
}

func (s *decisionStore) Allowed(ctx context.Context) ([]entity.Origin, error) {
	return s.listByDecision(ctx, entity.PermissionAllow)
}

func (s *decisionStore) Denied(ctx context.Context) ([]entity.Origin, error) {
	return s.listByDecision(ctx, entity.PermissionBlock)
}

func (s *decisionStore) listByDecision(ctx context.Context, decision entity.PermissionState) ([]entity.Origin, error) {
	rows, err := s.queries.ListOriginsByDecision(ctx, string(decision))
	if err != nil {
		return nil, fmt.Errorf("list %s origins: %w", decision, err)
	}
	origins := make([]entity.Origin, len(rows))
	for i, row := range rows {
		origins[i] = entity.Origin(row)
	}
	return origins, nil
}

func (s *decisionStore) RecordDecision(ctx context.Context, origin entity.Origin, allow bool) (entity.DecisionDelta, error) {
	log := logging.FromContext(ctx)

	target := entity.PermissionBlock
	if allow {
		target = entity.PermissionAllow
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("begin decision transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := s.queries.WithTx(tx)

	current, err := q.GetOriginDecision(ctx, string(origin))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First decision for this origin.
	case err != nil:
		return entity.DecisionDelta{}, fmt.Errorf("read current decision: %w", err)
	case current.Decision == string(target):
		// Idempotent: already in the destination list, nothing to persist.
		log.Debug().Str("origin", string(origin)).Str("decision", string(target)).Msg("decision already recorded")
		return entity.DecisionDelta{}, nil
	}

	if upsertErr := q.UpsertOriginDecision(ctx, sqlc.UpsertOriginDecisionParams{
		Origin:   string(origin),
		Decision: string(target),
	}); upsertErr != nil {
		return entity.DecisionDelta{}, fmt.Errorf("record decision: %w", upsertErr)
	}

	if err := tx.Commit(); err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("commit decision: %w", err)
	}

	delta := entity.DecisionDelta{}
	if allow {
		delta.AllowedChanged = true
		delta.DeniedChanged = current.Decision == string(entity.PermissionBlock)
	} else {
		delta.DeniedChanged = true
		delta.AllowedChanged = current.Decision == string(entity.PermissionAllow)
	}

	log.Debug().
		Str("origin", string(origin)).
		Str("decision", string(target)).
		Bool("allowed_changed", delta.AllowedChanged).
		Bool("denied_changed", delta.DeniedChanged).
		Msg("decision recorded")

	return delta, nil
}

func (s *decisionStore) ResetOrigin(ctx context.Context, origin entity.Origin) (entity.DecisionDelta, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("begin reset transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := s.queries.WithTx(tx)

	current, err := q.GetOriginDecision(ctx, string(origin))
	if errors.Is(err, sql.ErrNoRows) {
		// Not in either list; the caller treats this as misuse.
		return entity.DecisionDelta{}, nil
	}
	if err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("read current decision: %w", err)
	}

	if _, err := q.DeleteOriginDecision(ctx, string(origin)); err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("reset origin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return entity.DecisionDelta{}, fmt.Errorf("commit reset: %w", err)
	}

	return entity.DecisionDelta{
		AllowedChanged: current.Decision == string(entity.PermissionAllow),
		DeniedChanged:  current.Decision == string(entity.PermissionBlock),
	}, nil
}

func (s *decisionStore) ResetAll(ctx context.Context) error {
	if err := s.queries.DeleteAllOriginDecisions(ctx); err != nil {
		return fmt.Errorf("reset all origins: %w", err)
	}
	return nil
}
