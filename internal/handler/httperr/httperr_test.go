//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-reservation/internal/handler/httperr"
	"classroom-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkInForm struct {
	RoomID string `validate:"required"`
	Basis  string `validate:"omitempty,oneof=trust points"`
}

func perform(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set("request_id", "20301001120000-abcd1234")
		h(c)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAbortWithError(t *testing.T) {
	rec, body := perform(t, func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errs.New("slot taken"), "Room is already reserved for this time slot", nil)
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Room is already reserved for this time slot", body.Error.Message)
	assert.Equal(t, "20301001120000-abcd1234", body.RequestID)
	assert.Nil(t, body.Detail)
}

func TestAbortWithError_PanicsOnNilError(t *testing.T) {
	assert.Panics(t, func() {
		httperr.AbortWithError(&gin.Context{}, http.StatusBadRequest, nil, "x", nil)
	})
}

func TestAbortWithBindError(t *testing.T) {
	t.Run("validator errors become field details", func(t *testing.T) {
		verr := validator.New().Struct(checkInForm{Basis: "coins"})
		require.Error(t, verr)

		rec, body := perform(t, func(c *gin.Context) {
			httperr.AbortWithBindError(c, verr, "Invalid query")
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid query", body.Error.Message)
		assert.ElementsMatch(t, []any{
			map[string]any{"field": "RoomID", "rule": "required"},
			map[string]any{"field": "Basis", "rule": "oneof"},
		}, body.Detail)
	})

	t.Run("other errors carry no detail", func(t *testing.T) {
		rec, body := perform(t, func(c *gin.Context) {
			httperr.AbortWithBindError(c, errs.New("unexpected EOF"), "Invalid request")
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request", body.Error.Message)
		assert.Nil(t, body.Detail)
	})
}
