package commands

import (
	"context"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/pkg/clock"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownReason = errs.ErrUnknownReason

type PointCommands interface {
	AddPoints(ctx context.Context, userID uuid.UUID, reason string) (*PointBalanceResult, error)
	DeductPoints(ctx context.Context, userID uuid.UUID, reason string) (*PointBalanceResult, error)
}

type pointUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPointUseCase(uow shared.UnitOfWork, clk clock.Clock) PointCommands {
	return &pointUseCaseImpl{uow: uow, clock: clk}
}

func (uc *pointUseCaseImpl) AddPoints(ctx context.Context, userID uuid.UUID, reason string) (*PointBalanceResult, error) {
	r, err := point.ParseEarnReason(reason)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownReason)
	}
	return uc.apply(ctx, userID, r)
}

func (uc *pointUseCaseImpl) DeductPoints(ctx context.Context, userID uuid.UUID, reason string) (*PointBalanceResult, error) {
	r, err := point.ParseDeductReason(reason)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownReason)
	}
	return uc.apply(ctx, userID, r)
}

func (uc *pointUseCaseImpl) apply(ctx context.Context, userID uuid.UUID, reason point.Reason) (*PointBalanceResult, error) {
	now := uc.clock.Now()

	var balance point.Balance
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := applyPointReason(ctx, tx, userID, reason, now)
		if derr != nil {
			return derr
		}
		balance = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PointBalanceResult{UserID: userID, Balance: balance.Value()}, nil
}
