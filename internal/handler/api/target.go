package api

import (
	"net/http"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// targetUser resolves the :userId path parameter and checks the caller may read it.
func targetUser(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
		return uuid.Nil, false
	}

	target, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return uuid.Nil, false
	}

	if !actor.CanAccess(target) {
		err := errs.Mark(errs.New("cross-user access denied"), errs.ErrForbidden)
		abortWithUseCaseError(c, err)
		return uuid.Nil, false
	}
	return target, true
}

func currentUser(c *gin.Context) (user.Principal, bool) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		abortUnauthenticated(c)
	}
	return actor, ok
}
