//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/handler/api"
	"bikeshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubAssistantQueries struct {
	rec    *booking.LookupRecord
	err    error
	answer string
}

func (s *stubAssistantQueries) LookupBooking(_ context.Context, _ string) (*booking.LookupRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

func (s *stubAssistantQueries) Answer(_ string) string {
	return s.answer
}

type AssistantHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	queries *stubAssistantQueries
}

func (s *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.queries = &stubAssistantQueries{}

	handler := api.NewAssistantHandler(s.queries)
	s.router.GET("/assistant/bookings/:reference", handler.LookupBooking)
	s.router.POST("/assistant/ask", handler.Ask)
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

func (s *AssistantHandlerTestSuite) TestLookupBooking() {
	s.Run("active booking: returns the access code", func() {
		s.queries.err = nil
		s.queries.rec = &booking.LookupRecord{
			Reference:  "BOOK-1A2B3C4D",
			AccessCode: "AC1B2C3D",
			Status:     "active",
		}

		req := httptest.NewRequest(http.MethodGet, "/assistant/bookings/BOOK-1A2B3C4D", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("AC1B2C3D", resp["accessCode"])
	})

	s.Run("inactive booking: access code withheld", func() {
		s.queries.err = nil
		s.queries.rec = &booking.LookupRecord{
			Reference:  "BOOK-1A2B3C4D",
			AccessCode: "AC1B2C3D",
			Status:     "cancelled",
		}

		req := httptest.NewRequest(http.MethodGet, "/assistant/bookings/BOOK-1A2B3C4D", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("", resp["accessCode"])
		s.Equal("cancelled", resp["status"])
	})

	s.Run("unknown reference: returns 404", func() {
		s.queries.err = queries.ErrLookupNotFound

		req := httptest.NewRequest(http.MethodGet, "/assistant/bookings/BOOK-FFFFFFFF", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *AssistantHandlerTestSuite) TestAsk() {
	s.Run("returns the matched answer", func() {
		s.queries.answer = "Rental rates vary by bike type."

		req := httptest.NewRequest(http.MethodPost, "/assistant/ask", strings.NewReader(`{"question": "how much does it cost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("Rental rates vary by bike type.", resp["answer"])
	})

	s.Run("missing question: returns 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/assistant/ask", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
