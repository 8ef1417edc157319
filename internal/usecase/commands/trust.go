package commands

import (
	"context"
	"log/slog"

	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownEvent = errs.ErrUnknownEvent

type TrustCommands interface {
	UpdateScore(ctx context.Context, userID uuid.UUID, event string) (*TrustScoreResult, error)
}

type trustUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.Cache
}

func NewTrustUseCase(uow shared.UnitOfWork, cache shared.Cache) TrustCommands {
	return &trustUseCaseImpl{uow: uow, cache: cache}
}

func (uc *trustUseCaseImpl) UpdateScore(ctx context.Context, userID uuid.UUID, event string) (*TrustScoreResult, error) {
	ev, err := trust.ParseEvent(event)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownEvent)
	}

	var score trust.Score
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := applyTrustEvent(ctx, tx, userID, ev)
		if derr != nil {
			return derr
		}
		score = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cerr := uc.cache.Invalidate(ctx, shared.TrustScoreCacheKey(userID)); cerr != nil {
		slog.Warn("failed to invalidate trust score cache", "user_id", userID.String(), "error", cerr.Error())
	}

	return &TrustScoreResult{UserID: userID, Score: score.Value()}, nil
}
