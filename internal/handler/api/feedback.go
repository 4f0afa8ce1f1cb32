package api

import (
	"errors"
	"net/http"

	reqdto "bikeshare-api/internal/handler/dto/request"
	resdto "bikeshare-api/internal/handler/dto/response"
	"bikeshare-api/internal/usecase/commands"
	"bikeshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackCommands commands.FeedbackCommands
	feedbackQueries  queries.FeedbackQueries
}

func NewFeedbackHandler(feedbackCommands commands.FeedbackCommands, feedbackQueries queries.FeedbackQueries) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackCommands: feedbackCommands,
		feedbackQueries:  feedbackQueries,
	}
}

// @Summary Submit feedback
// @Description Record free-text feedback about a bike with sentiment scoring
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} resdto.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Router /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req reqdto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.feedbackCommands.SubmitFeedback(c.Request.Context(), commands.SubmitFeedbackInput{
		BikeID:   req.BikeID,
		UserType: req.UserType,
		Text:     req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyFeedback):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Feedback text is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FeedbackResponse{
		FeedbackID: result.FeedbackID,
		Sentiment:  result.Sentiment,
	})
}

// @Summary Raise a concern
// @Description File a concern ticket against a booking reference
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitConcernRequest true "Concern"
// @Success 201 {object} resdto.ConcernResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /feedback/concerns [post]
func (h *FeedbackHandler) SubmitConcern(c *gin.Context) {
	var req reqdto.SubmitConcernRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.feedbackCommands.SubmitConcern(c.Request.Context(), commands.SubmitConcernInput{
		BookingReference: req.BookingReference,
		Description:      req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyFeedback):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Concern description is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ConcernResponse{TicketID: result.TicketID})
}

// @Summary List feedback
// @Description List all submitted feedback with sentiment (operator only)
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FeedbackListItem
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	views, err := h.feedbackQueries.ListFeedback(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeedbackViews(views))
}
