package votes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Handler handles vote-related HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates a new vote handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func bindIDs(c *gin.Context) (reportID, userID primitive.ObjectID, ok bool) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID format", "INVALID_ID")
		return reportID, userID, false
	}

	userID, err = primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
		return reportID, userID, false
	}

	return reportID, userID, true
}

// Cast godoc
// @Summary Vote on a report
// @Description Idempotent: a second vote from the same resident is a no-op, not an error
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=CastResult}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/vote [post]
func (h *Handler) Cast(c *gin.Context) {
	reportID, userID, ok := bindIDs(c)
	if !ok {
		return
	}

	result, err := h.service.Cast(c.Request.Context(), reportID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to cast vote", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, result)
}

// Status godoc
// @Summary Check vote status
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=StatusResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/vote [get]
func (h *Handler) Status(c *gin.Context) {
	reportID, userID, ok := bindIDs(c)
	if !ok {
		return
	}

	status, err := h.service.Status(c.Request.Context(), reportID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to check vote status", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, status)
}
