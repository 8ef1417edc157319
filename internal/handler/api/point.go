package api

import (
	"context"
	"net/http"

	reqdto "classroom-reservation/internal/handler/dto/request"
	resdto "classroom-reservation/internal/handler/dto/response"
	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PointHandler struct {
	cmds commands.PointCommands
	q    queries.PointQueries
}

func NewPointHandler(cmds commands.PointCommands, q queries.PointQueries) *PointHandler {
	return &PointHandler{cmds: cmds, q: q}
}

// @Summary Own point balance
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PointBalanceResponse
// @Router /points/me [get]
func (h *PointHandler) GetMine(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	h.respondBalance(c, actor.ID())
}

// @Summary Point balance of a user
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.PointBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /points/{userId} [get]
func (h *PointHandler) Get(c *gin.Context) {
	target, ok := targetUser(c)
	if !ok {
		return
	}
	h.respondBalance(c, target)
}

// @Summary Own point history
// @Description Newest first, keyset paginated through the opaque nextCursor.
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-100)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PointHistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /points/me/history [get]
func (h *PointHandler) History(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var q reqdto.PointHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query")
		return
	}

	items, next, err := h.q.History(c.Request.Context(), actor.ID(), q.Cursor(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPointHistory(items, next))
}

// @Summary Award points
// @Description Staff only.
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.PointReasonRequest true "Earn reason"
// @Success 200 {object} resdto.PointBalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /points/{userId}/add [post]
func (h *PointHandler) Add(c *gin.Context) {
	h.mutate(c, h.cmds.AddPoints)
}

// @Summary Deduct points
// @Description Staff only. The balance never drops below zero.
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.PointReasonRequest true "Deduct reason"
// @Success 200 {object} resdto.PointBalanceResponse
// @Failure 400 {object} httperr.Response
// @Router /points/{userId}/deduct [post]
func (h *PointHandler) Deduct(c *gin.Context) {
	h.mutate(c, h.cmds.DeductPoints)
}

func (h *PointHandler) mutate(c *gin.Context, run func(ctx context.Context, userID uuid.UUID, reason string) (*commands.PointBalanceResult, error)) {
	target, ok := targetUser(c)
	if !ok {
		return
	}

	var req reqdto.PointReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	result, err := run(c.Request.Context(), target, req.Reason)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPointBalanceResult(result))
}

func (h *PointHandler) respondBalance(c *gin.Context, userID uuid.UUID) {
	view, err := h.q.GetBalance(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPointBalanceView(view))
}
