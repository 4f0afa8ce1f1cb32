//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bikeshare-api/internal/handler/api"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type stubBikeCommands struct {
	addResult *commands.AddBikeResult
	addErr    error
	updateErr error
	gotPatch  *commands.BikePatch
}

func (s *stubBikeCommands) AddBike(_ context.Context, _ commands.AddBikeInput) (*commands.AddBikeResult, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.addResult, nil
}

func (s *stubBikeCommands) UpdateBike(_ context.Context, _ uuid.UUID, patch commands.BikePatch) error {
	s.gotPatch = &patch
	return s.updateErr
}

type stubBikeQueries struct {
	views []*queries.BikeView
	view  *queries.BikeView
	err   error
}

func (s *stubBikeQueries) GetBike(_ context.Context, _ uuid.UUID) (*queries.BikeView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubBikeQueries) ListBikes(_ context.Context, _ string) ([]*queries.BikeView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views, nil
}

type stubAvailabilityQueries struct {
	result    *queries.AvailabilityResult
	views     []*queries.BikeView
	err       error
	gotType   string
	gotStart  *time.Time
	gotEnd    *time.Time
	searchErr error
}

func (s *stubAvailabilityQueries) CheckAvailability(_ context.Context, _ uuid.UUID, _, _ time.Time) (*queries.AvailabilityResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAvailabilityQueries) SearchAvailable(_ context.Context, typeFilter string, start, end *time.Time) ([]*queries.BikeView, error) {
	s.gotType = typeFilter
	s.gotStart = start
	s.gotEnd = end
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.views, nil
}

type BikeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	commands     *stubBikeCommands
	queries      *stubBikeQueries
	availability *stubAvailabilityQueries
}

func (s *BikeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &stubBikeCommands{}
	s.queries = &stubBikeQueries{}
	s.availability = &stubAvailabilityQueries{}

	handler := api.NewBikeHandler(s.commands, s.queries, s.availability)
	s.router.GET("/bikes", handler.ListBikes)
	s.router.GET("/bikes/:id/availability", handler.CheckAvailability)
	s.router.GET("/availability", handler.SearchAvailability)
	s.router.POST("/bikes", handler.AddBike)
	s.router.PATCH("/bikes/:id", handler.UpdateBike)
}

func TestBikeHandlerSuite(t *testing.T) {
	suite.Run(t, new(BikeHandlerTestSuite))
}

func (s *BikeHandlerTestSuite) TestListBikes() {
	s.Run("success: returns rate as fixed-point string", func() {
		s.queries.err = nil
		s.queries.views = []*queries.BikeView{{
			ID:         uuid.New(),
			Type:       "scooter",
			HourlyRate: decimal.RequireFromString("7.5"),
			Available:  true,
		}}

		req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Require().Len(resp, 1)
		s.Equal("7.50", resp[0]["hourlyRate"])
	})

	s.Run("unknown type filter: returns 400", func() {
		s.queries.err = queries.ErrInvalidTypeName

		req := httptest.NewRequest(http.MethodGet, "/bikes?type=hoverboard", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BikeHandlerTestSuite) TestCheckAvailability() {
	bikeID := uuid.New()
	url := "/bikes/" + bikeID.String() + "/availability?start_time=2024-06-01T10:00:00Z&end_time=2024-06-01T12:00:00Z"

	s.Run("success: reports conflict reason", func() {
		s.availability.err = nil
		s.availability.result = &queries.AvailabilityResult{
			BikeID:    bikeID,
			Available: false,
			Reason:    queries.ReasonWindowConflict,
		}

		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(false, resp["available"])
		s.Equal("window_conflict", resp["reason"])
	})

	s.Run("missing window params: returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/bikes/"+bikeID.String()+"/availability", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown bike: returns 404", func() {
		s.availability.err = queries.ErrBikeNotFound

		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BikeHandlerTestSuite) TestSearchAvailability() {
	s.Run("forwards filter and window, returns the bikes", func() {
		s.availability.searchErr = nil
		s.availability.views = []*queries.BikeView{{
			ID:         uuid.New(),
			Type:       "scooter",
			HourlyRate: decimal.RequireFromString("5.00"),
			Available:  true,
		}}

		url := "/availability?type=scooter&start_time=2024-06-01T10:00:00Z&end_time=2024-06-01T12:00:00Z"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		var resp []map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Require().Len(resp, 1)
		s.Equal("scooter", resp[0]["type"])

		s.Equal("scooter", s.availability.gotType)
		s.Require().NotNil(s.availability.gotStart)
		s.Require().NotNil(s.availability.gotEnd)
		s.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), s.availability.gotStart.UTC())
	})

	s.Run("no params lists everything bookable", func() {
		s.availability.searchErr = nil
		s.availability.views = nil

		req := httptest.NewRequest(http.MethodGet, "/availability", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		s.Empty(s.availability.gotType)
		s.Nil(s.availability.gotStart)
		s.Nil(s.availability.gotEnd)
	})

	s.Run("half a window: returns 400", func() {
		s.availability.searchErr = queries.ErrInvalidWindow

		req := httptest.NewRequest(http.MethodGet, "/availability?start_time=2024-06-01T10:00:00Z", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown type: returns 400", func() {
		s.availability.searchErr = queries.ErrInvalidTypeName

		req := httptest.NewRequest(http.MethodGet, "/availability?type=hoverboard", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BikeHandlerTestSuite) TestAddBike() {
	body := `{
		"type": "ebike",
		"hourly_rate": "8.00",
		"location": "Harbor Gate",
		"franchise_id": "` + uuid.New().String() + `"
	}`

	s.Run("success: returns 201 with minted access code", func() {
		s.commands.addErr = nil
		s.commands.addResult = &commands.AddBikeResult{
			BikeID:     uuid.New(),
			AccessCode: "AC1B2C3D",
		}

		req := httptest.NewRequest(http.MethodPost, "/bikes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusCreated, w.Code)
		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("AC1B2C3D", resp["accessCode"])
	})

	s.Run("unparseable rate: returns 400", func() {
		badRate := strings.Replace(body, `"8.00"`, `"eight"`, 1)

		req := httptest.NewRequest(http.MethodPost, "/bikes", strings.NewReader(badRate))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown type: returns 400", func() {
		s.commands.addErr = commands.ErrInvalidBikeType

		req := httptest.NewRequest(http.MethodPost, "/bikes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BikeHandlerTestSuite) TestUpdateBike() {
	url := "/bikes/" + uuid.New().String()

	s.Run("success: forwards the parsed patch", func() {
		s.commands.updateErr = nil

		req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{"hourly_rate": "9.25", "available": false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNoContent, w.Code)
		s.Require().NotNil(s.commands.gotPatch)
		s.Equal("9.25", s.commands.gotPatch.HourlyRate.String())
		s.False(*s.commands.gotPatch.Available)
	})

	s.Run("empty patch: returns 400", func() {
		s.commands.updateErr = commands.ErrEmptyPatch

		req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown bike: returns 404", func() {
		s.commands.updateErr = commands.ErrBikeNotFound

		req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{"available": true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
