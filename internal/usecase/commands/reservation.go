package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/pkg/clock"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.ErrReservationNotFound
	ErrReservationConflict     = errs.ErrReservationConflict
	ErrIllegalState            = errs.ErrIllegalState
	ErrInvalidTimeSlot         = errs.ErrInvalidTimeSlot
	ErrInvalidRoomID           = errs.ErrInvalidRoomID
	ErrVerificationMismatch    = errs.ErrVerificationMismatch
	ErrRecognitionFailed       = errs.ErrRecognitionFailed
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CreateReservationRequest struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (*CreateReservationResult, error)
	CheckIn(ctx context.Context, reservationID, userID uuid.UUID, img shared.Image) (*TransitionResult, error)
	CheckOut(ctx context.Context, reservationID, userID uuid.UUID, img shared.Image) (*TransitionResult, error)
	Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*TransitionResult, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	verifier shared.RoomVerifier
	archive  shared.ImageArchive
	cache    shared.Cache
	clock    clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	verifier shared.RoomVerifier,
	archive shared.ImageArchive,
	cache shared.Cache,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		verifier: verifier,
		archive:  archive,
		cache:    cache,
		clock:    clk,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest, userID uuid.UUID) (*CreateReservationResult, error) {
	roomID, err := reservation.NewRoomID(req.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoomID)
	}
	slot, err := reservation.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	res := reservation.NewReservation(userID, roomID, slot, uc.clock.Now())

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		if derr := repo.LockRoom(ctx, tx.DB(), roomID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		overlapping, derr := repo.CountOverlapping(ctx, tx.DB(), roomID, slot)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if overlapping > 0 {
			return ErrReservationConflict
		}

		id, derr := repo.Create(ctx, tx.DB(), res)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrReservationConflict)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReservationResult{ReservationID: createdID}, nil
}

func (uc *reservationUseCaseImpl) CheckIn(ctx context.Context, reservationID, userID uuid.UUID, img shared.Image) (*TransitionResult, error) {
	res, err := uc.loadOwned(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if !res.Status().CanTransitionTo(reservation.StatusInUse) {
		return nil, ErrIllegalState
	}
	if err := uc.verify(ctx, res, img, "check-in"); err != nil {
		return nil, err
	}

	from := res.Status()
	onTime, err := res.CheckIn(uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrIllegalState)
	}
	event := trust.EventCheckIn
	if onTime {
		event = trust.EventOnTimeCheckIn
	}

	var score trust.Score
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := transition(ctx, tx, res, from); derr != nil {
			return derr
		}
		s, derr := applyTrustEvent(ctx, tx, userID, event)
		if derr != nil {
			return derr
		}
		score = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, userID)

	value := score.Value()
	return &TransitionResult{
		ReservationID: res.ID(),
		Status:        res.Status().String(),
		OnTime:        onTime,
		TrustScore:    &value,
	}, nil
}

func (uc *reservationUseCaseImpl) CheckOut(ctx context.Context, reservationID, userID uuid.UUID, img shared.Image) (*TransitionResult, error) {
	res, err := uc.loadOwned(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}
	if !res.Status().CanTransitionTo(reservation.StatusEnded) {
		return nil, ErrIllegalState
	}
	if err := uc.verify(ctx, res, img, "check-out"); err != nil {
		return nil, err
	}

	from := res.Status()
	now := uc.clock.Now()
	if err := res.CheckOut(now); err != nil {
		return nil, errs.Mark(err, ErrIllegalState)
	}

	var (
		score   trust.Score
		balance point.Balance
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := transition(ctx, tx, res, from); derr != nil {
			return derr
		}
		s, derr := applyTrustEvent(ctx, tx, userID, trust.EventCheckOut)
		if derr != nil {
			return derr
		}
		b, derr := applyPointReason(ctx, tx, userID, point.ReasonLectureCompleted, now)
		if derr != nil {
			return derr
		}
		score, balance = s, b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, userID)

	value := score.Value()
	points := balance.Value()
	return &TransitionResult{
		ReservationID: res.ID(),
		Status:        res.Status().String(),
		TrustScore:    &value,
		PointBalance:  &points,
	}, nil
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID, userID uuid.UUID) (*TransitionResult, error) {
	res, err := uc.loadOwned(ctx, reservationID, userID)
	if err != nil {
		return nil, err
	}

	from := res.Status()
	now := uc.clock.Now()
	early, err := res.Cancel(now)
	if err != nil {
		return nil, errs.Mark(err, ErrIllegalState)
	}

	var balance *point.Balance
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		balance = nil
		if derr := transition(ctx, tx, res, from); derr != nil {
			return derr
		}
		if !early {
			return nil
		}
		b, derr := applyPointReason(ctx, tx, userID, point.ReasonCancelBeforeStart, now)
		if derr != nil {
			return derr
		}
		balance = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &TransitionResult{
		ReservationID: res.ID(),
		Status:        res.Status().String(),
	}
	if balance != nil {
		v := balance.Value()
		result.PointBalance = &v
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) loadOwned(ctx context.Context, reservationID, userID uuid.UUID) (*reservation.Reservation, error) {
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Another user's reservation is reported as absent.
	if snap.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return snapshotToDomain(snap)
}

// verify archives the photo as evidence, then checks the recognized room against the reservation.
func (uc *reservationUseCaseImpl) verify(ctx context.Context, res *reservation.Reservation, img shared.Image, kind string) error {
	key := archiveKey(res.ID(), kind, uc.clock.Now(), img.ContentType)
	if err := uc.archive.Archive(ctx, key, img); err != nil {
		slog.Warn("failed to archive verification image",
			"reservation_id", res.ID().String(),
			"key", key,
			"error", err.Error())
	}

	recognized, err := uc.verifier.Recognize(ctx, img)
	if err != nil {
		return errs.Mark(err, ErrRecognitionFailed)
	}

	if err := res.VerifyRoom(recognized); err != nil {
		slog.Info("room verification mismatch",
			"reservation_id", res.ID().String(),
			"expected", res.RoomID().String(),
			"recognized", recognized)
		return errs.Mark(err, ErrVerificationMismatch)
	}
	return nil
}

func (uc *reservationUseCaseImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	keys := []string{shared.UsageSummaryCacheKey(userID), shared.TrustScoreCacheKey(userID)}
	if err := uc.cache.Invalidate(ctx, keys...); err != nil {
		slog.Warn("failed to invalidate cache", "user_id", userID.String(), "error", err.Error())
	}
}

// transition applies the compare-and-swap update and classifies a lost race.
func transition(ctx context.Context, tx shared.Tx, res *reservation.Reservation, from reservation.Status) error {
	err := tx.Reservations().Transition(ctx, tx.DB(), res, from)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, rerr := tx.Reads().ReservationByID(ctx, res.ID())
	if rerr != nil {
		if infra.IsKind(rerr, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(rerr, ErrDatabaseOperationFailed)
	}
	if snap.UserID != res.UserID() {
		return ErrReservationNotFound
	}
	return ErrIllegalState
}

func snapshotToDomain(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	roomID, err := reservation.NewRoomID(snap.RoomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slot, err := reservation.NewTimeSlot(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	status, err := reservation.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservation.ReconstructReservation(snap.ID, snap.UserID, roomID, slot, status, snap.CreatedAt, snap.UpdatedAt), nil
}

func archiveKey(reservationID uuid.UUID, kind string, now time.Time, contentType string) string {
	return fmt.Sprintf("checkins/%s/%s-%d.%s", reservationID, kind, now.Unix(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return "bin"
	}
}

