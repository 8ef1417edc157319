package api

import (
	"net/http"

	reqdto "classroom-reservation/internal/handler/dto/request"
	resdto "classroom-reservation/internal/handler/dto/response"
	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrustHandler struct {
	cmds commands.TrustCommands
	q    queries.TrustQueries
}

func NewTrustHandler(cmds commands.TrustCommands, q queries.TrustQueries) *TrustHandler {
	return &TrustHandler{cmds: cmds, q: q}
}

// @Summary Own trust score
// @Tags trust
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TrustScoreResponse
// @Failure 401 {object} httperr.Response
// @Router /trust/me [get]
func (h *TrustHandler) GetMine(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	h.respondScore(c, actor.ID())
}

// @Summary Trust score of a user
// @Description Students may only read their own score.
// @Tags trust
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.TrustScoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /trust/{userId} [get]
func (h *TrustHandler) Get(c *gin.Context) {
	target, ok := targetUser(c)
	if !ok {
		return
	}
	h.respondScore(c, target)
}

// @Summary Apply trust event
// @Description Staff only. Applies one behavioral event and returns the clamped score.
// @Tags trust
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.UpdateTrustRequest true "Trust event"
// @Success 200 {object} resdto.TrustScoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /trust/{userId} [patch]
func (h *TrustHandler) Update(c *gin.Context) {
	target, ok := targetUser(c)
	if !ok {
		return
	}

	var req reqdto.UpdateTrustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.UpdateScore(c.Request.Context(), target, req.Event)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrustScoreResult(result))
}

func (h *TrustHandler) respondScore(c *gin.Context, userID uuid.UUID) {
	view, err := h.q.GetScore(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrustScoreView(view))
}
