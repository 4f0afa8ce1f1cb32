package api

import (
	"errors"
	"net/http"

	reqdto "bikeshare-api/internal/handler/dto/request"
	resdto "bikeshare-api/internal/handler/dto/response"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BikeHandler struct {
	bikeCommands        commands.BikeCommands
	bikeQueries         queries.BikeQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewBikeHandler(
	bikeCommands commands.BikeCommands,
	bikeQueries queries.BikeQueries,
	availabilityQueries queries.AvailabilityQueries,
) *BikeHandler {
	return &BikeHandler{
		bikeCommands:        bikeCommands,
		bikeQueries:         bikeQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List bikes
// @Description List the fleet, optionally filtered by type
// @Tags bikes
// @Produce json
// @Param type query string false "Bike type filter (scooter, ebike, segway)"
// @Success 200 {array} resdto.BikeResponse
// @Failure 400 {object} map[string]string
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	views, err := h.bikeQueries.ListBikes(c.Request.Context(), c.Query("type"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidTypeName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown bike type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBikeViews(views))
}

// @Summary Get bike
// @Description Get a single bike by ID
// @Tags bikes
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} resdto.BikeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bike ID format",
		})
		return
	}

	view, err := h.bikeQueries.GetBike(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Bike not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBikeView(view))
}

// @Summary Check availability
// @Description Report whether a bike is bookable for a window
// @Tags bikes
// @Produce json
// @Param id path string true "Bike ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bikes/{id}/availability [get]
func (h *BikeHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bike ID format",
		})
		return
	}

	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_time and end_time are required RFC3339 timestamps",
		})
		return
	}

	result, err := h.availabilityQueries.CheckAvailability(c.Request.Context(), id, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		case errors.Is(err, queries.ErrBikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Bike not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

// @Summary Search available bikes
// @Description List bookable bikes, optionally narrowed by type and by a time window
// @Tags bikes
// @Produce json
// @Param type query string false "Bike type filter (scooter, ebike, segway)"
// @Param start_time query string false "Window start (RFC3339, requires end_time)"
// @Param end_time query string false "Window end (RFC3339, requires start_time)"
// @Success 200 {array} resdto.BikeResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *BikeHandler) SearchAvailability(c *gin.Context) {
	var req reqdto.SearchAvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_time and end_time must be RFC3339 timestamps",
		})
		return
	}

	views, err := h.availabilityQueries.SearchAvailable(c.Request.Context(), req.Type, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		case errors.Is(err, queries.ErrInvalidTypeName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown bike type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBikeViews(views))
}

// @Summary Add bike
// @Description Register a new bike in the fleet (operator only)
// @Tags bikes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddBikeRequest true "New bike"
// @Success 201 {object} resdto.AddBikeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bikes [post]
func (h *BikeHandler) AddBike(c *gin.Context) {
	var req reqdto.AddBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rate, err := req.ParseRate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hourly rate",
		})
		return
	}

	result, err := h.bikeCommands.AddBike(c.Request.Context(), commands.AddBikeInput{
		Type:        req.Type,
		HourlyRate:  rate,
		Available:   req.IsAvailable(),
		Location:    req.Location,
		Features:    req.Features,
		FranchiseID: req.FranchiseID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBikeType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown bike type",
			})
		case errors.Is(err, commands.ErrInvalidRate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Hourly rate must not be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AddBikeResponse{
		BikeID:     result.BikeID,
		AccessCode: result.AccessCode,
	})
}

// @Summary Update bike
// @Description Patch bike attributes (operator only)
// @Tags bikes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bike ID"
// @Param request body reqdto.UpdateBikeRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bikes/{id} [patch]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid bike ID format",
		})
		return
	}

	var req reqdto.UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	patch := commands.BikePatch{
		Available: req.Available,
		Location:  req.Location,
		Features:  req.Features,
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid hourly rate",
			})
			return
		}
		patch.HourlyRate = &rate
	}

	if err := h.bikeCommands.UpdateBike(c.Request.Context(), id, patch); err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No updatable fields supplied",
			})
		case errors.Is(err, commands.ErrInvalidRate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Hourly rate must not be negative",
			})
		case errors.Is(err, commands.ErrBikeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Bike not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
