package components

import (
	"classroom-reservation/internal/handler"
	"classroom-reservation/internal/handler/api"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewTrustHandler,
		api.NewPointHandler,
		api.NewOccupancyHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Reservation *api.ReservationHandler
	Trust       *api.TrustHandler
	Point       *api.PointHandler
	Occupancy   *api.OccupancyHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Reservation: p.Reservation,
		Trust:       p.Trust,
		Point:       p.Point,
		Occupancy:   p.Occupancy,
	}
}
