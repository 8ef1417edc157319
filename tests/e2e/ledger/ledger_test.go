//go:build e2e

package ledger_test

import (
	"fmt"
	"net/http"
	"testing"

	"classroom-reservation/internal/handler/dto/request"
	"classroom-reservation/internal/handler/dto/response"
	"classroom-reservation/tests/common/dbtest"
	"classroom-reservation/tests/common/httptest"
	"classroom-reservation/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	trustURL          = "/api/trust/%s"
	myTrustURL        = "/api/trust/me"
	pointURL          = "/api/points/%s"
	pointAddURL       = "/api/points/%s/add"
	pointDeductURL    = "/api/points/%s/deduct"
	myPointHistoryURL = "/api/points/me/history"
	occupancyURL      = "/api/occupancy/estimate"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func (s *LedgerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

// =============================================================================
// TestTrustScore
// =============================================================================

func (s *LedgerSuite) TestTrustScore() {
	s.Run("Normal case: unknown user reads the baseline", func() {
		t := s.T()
		userID, token := s.Tokens.NewStudent(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myTrustURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.TrustScoreResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.Equal(t, userID, got.UserID)
		assert.InDelta(t, 36.5, got.Score, 0.001)
	})

	s.Run("Normal case: staff applies an event", func() {
		t := s.T()
		studentID, studentToken := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)

		body := request.UpdateTrustRequest{Event: "report_empty_room"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(trustURL, studentID), body, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.TrustScoreResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.InDelta(t, 37.0, got.Score, 0.001)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myTrustURL, nil, studentToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.InDelta(t, 37.0, got.Score, 0.001)
	})

	s.Run("Normal case: score never drops below zero", func() {
		t := s.T()
		studentID, _ := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)
		dbtest.SetTrustScore(t, s.DB, studentID, 20)

		body := request.UpdateTrustRequest{Event: "no_show"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(trustURL, studentID), body, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.TrustScoreResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.InDelta(t, 0.0, got.Score, 0.001)
	})

	s.Run("Abnormal case: students cannot adjust scores", func() {
		t := s.T()
		studentID, token := s.Tokens.NewStudent(t)

		body := request.UpdateTrustRequest{Event: "report_empty_room"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(trustURL, studentID), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Abnormal case: students cannot read other scores", func() {
		t := s.T()
		otherID, _ := s.Tokens.NewStudent(t)
		_, token := s.Tokens.NewStudent(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(trustURL, otherID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})
}

// =============================================================================
// TestPoints
// =============================================================================

func (s *LedgerSuite) TestPoints() {
	s.Run("Normal case: add and deduct with history", func() {
		t := s.T()
		studentID, studentToken := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(pointAddURL, studentID),
			request.PointReasonRequest{Reason: "report_misuse"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var balance response.PointBalanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
		assert.Equal(t, 110, balance.Balance)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(pointDeductURL, studentID),
			request.PointReasonRequest{Reason: "no_checkout"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
		assert.Equal(t, 95, balance.Balance)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myPointHistoryURL, nil, studentToken)
		require.Equal(t, http.StatusOK, w.Code)

		var history response.PointHistoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Len(t, history.Items, 3)
		assert.Equal(t, "no_checkout", history.Items[0].Reason)
		assert.Equal(t, "no checkout after deadline", history.Items[0].Description)
		assert.Equal(t, "misuse report accepted", history.Items[1].Description)
		assert.Equal(t, "first use bonus", history.Items[2].Description)
		assert.Empty(t, history.NextCursor)
	})

	s.Run("Normal case: history pages with a cursor", func() {
		t := s.T()
		studentID, studentToken := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)

		for range 2 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(pointAddURL, studentID),
				request.PointReasonRequest{Reason: "lecture_completed"}, staffToken)
			require.Equal(t, http.StatusOK, w.Code)
		}
		require.Equal(t, 3, dbtest.CountPointEvents(t, s.DB, studentID))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myPointHistoryURL+"?limit=2", nil, studentToken)
		require.Equal(t, http.StatusOK, w.Code)
		var page response.PointHistoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myPointHistoryURL+"?limit=2&after="+page.NextCursor, nil, studentToken)
		require.Equal(t, http.StatusOK, w.Code)
		var rest response.PointHistoryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rest))
		require.Len(t, rest.Items, 1)
		assert.Equal(t, "first_use_bonus", rest.Items[0].Reason)
	})

	s.Run("Normal case: balance floors at zero", func() {
		t := s.T()
		studentID, _ := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)
		dbtest.SetPointBalance(t, s.DB, studentID, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(pointDeductURL, studentID),
			request.PointReasonRequest{Reason: "no_auth_in_time"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(pointURL, studentID), nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)
		var balance response.PointBalanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &balance))
		assert.Equal(t, 0, balance.Balance)
	})

	s.Run("Abnormal case: deduction reason used for add", func() {
		t := s.T()
		studentID, _ := s.Tokens.NewStudent(t)
		_, staffToken := s.Tokens.NewStaff(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(pointAddURL, studentID),
			request.PointReasonRequest{Reason: "no_checkout"}, staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown point reason")
	})
}

// =============================================================================
// TestOccupancyEstimate
// =============================================================================

func (s *LedgerSuite) TestOccupancyEstimate() {
	s.Run("Normal case: estimate from a trust score", func() {
		t := s.T()
		_, token := s.Tokens.NewStudent(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, occupancyURL+"?elapsed_minutes=180&trust=100", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.OccupancyEstimateResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		assert.Equal(t, "trust", got.Basis)
		assert.Equal(t, 63, got.Probability)
	})

	s.Run("Abnormal case: neither trust nor points", func() {
		t := s.T()
		_, token := s.Tokens.NewStudent(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, occupancyURL+"?elapsed_minutes=30", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Either trust or points must be provided")
	})
}
