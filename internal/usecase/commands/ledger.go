package commands

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// applyTrustEvent lazily creates the score row, locks it, and stores the clamped result.
func applyTrustEvent(ctx context.Context, tx shared.Tx, userID uuid.UUID, ev trust.Event) (trust.Score, error) {
	repo := tx.Trust()
	if err := repo.Ensure(ctx, tx.DB(), userID, trust.Baseline()); err != nil {
		return trust.Score{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	current, err := repo.GetForUpdate(ctx, tx.DB(), userID)
	if err != nil {
		return trust.Score{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next := current.Apply(ev)
	if err := repo.Update(ctx, tx.DB(), userID, next); err != nil {
		return trust.Score{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}

// applyPointReason lazily creates the balance (recording the first use bonus), locks it,
// stores the floored result and appends the history event.
func applyPointReason(ctx context.Context, tx shared.Tx, userID uuid.UUID, reason point.Reason, now time.Time) (point.Balance, error) {
	repo := tx.Points()
	created, err := repo.Ensure(ctx, tx.DB(), userID, point.NewBalance(point.Baseline))
	if err != nil {
		return point.Balance{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if created {
		bonus := point.NewEvent(userID, point.ReasonFirstUseBonus, now)
		if err := repo.AppendEvent(ctx, tx.DB(), bonus); err != nil {
			return point.Balance{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	current, err := repo.GetForUpdate(ctx, tx.DB(), userID)
	if err != nil {
		return point.Balance{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	next := current.Apply(reason)
	if err := repo.Update(ctx, tx.DB(), userID, next); err != nil {
		return point.Balance{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := repo.AppendEvent(ctx, tx.DB(), point.NewEvent(userID, reason, now)); err != nil {
		return point.Balance{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return next, nil
}
