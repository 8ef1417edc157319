package api

import (
	"net/http"

	reqdto "classroom-reservation/internal/handler/dto/request"
	resdto "classroom-reservation/internal/handler/dto/response"
	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OccupancyHandler struct {
	q queries.OccupancyQueries
}

func NewOccupancyHandler(q queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{q: q}
}

// @Summary Estimate occupancy
// @Description Probability (percent) that a room is empty given elapsed minutes and either a trust score (0-100) or a point balance.
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Param elapsed_minutes query int true "Whole minutes since the reservation started"
// @Param trust query number false "Trust score 0-100"
// @Param points query int false "Point balance, takes priority over trust"
// @Success 200 {object} resdto.OccupancyEstimateResponse
// @Failure 400 {object} httperr.Response
// @Router /occupancy/estimate [get]
func (h *OccupancyHandler) Estimate(c *gin.Context) {
	var q reqdto.OccupancyEstimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query")
		return
	}

	estimate, err := h.q.Estimate(c.Request.Context(), q.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyEstimate(estimate))
}

// @Summary Estimate occupancy of a reservation
// @Description Uses elapsed time since the reservation start and the owner's trust score or point balance.
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param basis query string false "trust (default) or points"
// @Success 200 {object} resdto.OccupancyEstimateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/occupancy [get]
func (h *OccupancyHandler) EstimateForReservation(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	var q reqdto.ReservationOccupancyQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithBindError(c, bindErr, "Invalid query")
		return
	}
	basis, err := queries.ParseBasis(q.Basis)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	estimate, err := h.q.EstimateForReservation(c.Request.Context(), actor, id, basis)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyEstimate(estimate))
}
