package api

import (
	"errors"
	"net/http"

	reqdto "bikeshare-api/internal/handler/dto/request"
	resdto "bikeshare-api/internal/handler/dto/response"
	"bikeshare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantQueries queries.AssistantQueries
}

func NewAssistantHandler(assistantQueries queries.AssistantQueries) *AssistantHandler {
	return &AssistantHandler{assistantQueries: assistantQueries}
}

// @Summary Look up a booking
// @Description Resolve a booking reference to rental details and access code
// @Tags assistant
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference (case-insensitive)"
// @Success 200 {object} resdto.LookupResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assistant/bookings/{reference} [get]
func (h *AssistantHandler) LookupBooking(c *gin.Context) {
	rec, err := h.assistantQueries.LookupBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLookupNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking found for this reference",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.FromLookupRecord(rec)
	// The access code unlocks the bike; only active rentals get it.
	if rec.Status != "active" {
		resp.AccessCode = ""
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Ask the assistant
// @Description Answer a free-form question from the FAQ topics
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.AskAssistantRequest true "Question"
// @Success 200 {object} resdto.AnswerResponse
// @Failure 400 {object} map[string]string
// @Router /assistant/ask [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req reqdto.AskAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AnswerResponse{
		Answer: h.assistantQueries.Answer(req.Question),
	})
}
