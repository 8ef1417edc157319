package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	reqdto "classroom-reservation/internal/handler/dto/request"
	resdto "classroom-reservation/internal/handler/dto/response"
	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"
	"classroom-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	imageFormField = "image"
	maxImageBytes  = 10 << 20
)

var errImageTooLarge = errs.New("image exceeds size limit")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve a room for a time window. Overlapping reservations for the same room are rejected.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToCommand(), actor.ID())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	// The reservation is committed at this point; a failed read-back only shrinks the body.
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	view, err := h.q.GetByID(c.Request.Context(), actor, result.ReservationID)
	if err != nil {
		slog.Warn("reservation created but read-back failed",
			"reservation_id", result.ReservationID.String(),
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description All of the caller's reservations, newest start first, including cancelled ones.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(views))
}

// @Summary Usage summary
// @Description Count and total minutes of the caller's ended reservations.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UsageSummaryResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations/usage-summary [get]
func (h *ReservationHandler) UsageSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	summary, err := h.q.UsageSummary(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsageSummary(summary))
}

// @Summary Check in
// @Description Start using a reserved room by uploading a photo of its room number.
// @Tags reservations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param image formData file true "Room number photo"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.verifiedTransition(c, h.cmds.CheckIn)
}

// @Summary Check out
// @Description End use of a room by uploading a photo of its room number.
// @Tags reservations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param image formData file true "Room number photo"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	h.verifiedTransition(c, h.cmds.CheckOut)
}

// @Summary Cancel reservation
// @Description Cancel a reservation that has not started. Cancelling 15 minutes ahead earns points.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), id, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

func (h *ReservationHandler) verifiedTransition(
	c *gin.Context,
	run func(ctx context.Context, reservationID, userID uuid.UUID, img shared.Image) (*commands.TransitionResult, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	img, err := readImage(c)
	if err != nil {
		if errs.Is(err, errImageTooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Image is too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Image file is required", nil)
		return
	}

	result, err := run(c.Request.Context(), id, userID, img)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

func readImage(c *gin.Context) (shared.Image, error) {
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		return shared.Image{}, err
	}
	if fh.Size > maxImageBytes {
		return shared.Image{}, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return shared.Image{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return shared.Image{}, err
	}
	if len(data) > maxImageBytes {
		return shared.Image{}, errImageTooLarge
	}

	return shared.Image{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}, nil
}
