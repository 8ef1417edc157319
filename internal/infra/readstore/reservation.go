package readstore

import (
	"context"

	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/infra"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/pkg/pgconv"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListReservationsByUserRow, error)
	GetUsageSummaryByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetUsageSummaryByUserRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(sqlc.ListReservationsByUserRow(row)), nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(row)
	}
	return result, nil
}

func (r *ReservationReadStore) UsageSummaryByUser(ctx context.Context, userID uuid.UUID) (*queries.UsageSummary, error) {
	row, err := r.queries.GetUsageSummaryByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize usage", err)
	}

	return &queries.UsageSummary{
		UserID:           userID,
		ReservationCount: int(row.ReservationCount),
		TotalMinutes:     row.TotalMinutes,
	}, nil
}

func rowToReservationView(row sqlc.ListReservationsByUserRow) *queries.ReservationView {
	start := pgconv.TimeFromPgtype(row.StartTime)
	return &queries.ReservationView{
		ID:              row.ID,
		UserID:          row.UserID,
		RoomID:          row.RoomID,
		StartTime:       start,
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		Status:          row.Status,
		UseAuthDeadline: start.Add(reservation.UseAuthWindow),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
