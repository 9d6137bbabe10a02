package announcements

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Handler handles announcement-related HTTP requests
type Handler struct {
	repo     *Repository
	registry *wards.Registry
}

// NewHandler creates a new announcement handler
func NewHandler(repo *Repository, registry *wards.Registry) *Handler {
	return &Handler{repo: repo, registry: registry}
}

// ListForWard godoc
// @Summary List announcements visible to a ward
// @Description Pinned entries first, then newest first; expired entries are omitted
// @Tags announcements
// @Produce json
// @Param ward query string false "Ward (defaults to all)"
// @Success 200 {object} response.SuccessResponse{data=[]Announcement}
// @Router /announcements [get]
func (h *Handler) ListForWard(c *gin.Context) {
	ward, ok := h.registry.CanonicalTarget(c.DefaultQuery("ward", wards.TargetAll))
	if !ok {
		response.BadRequest(c, "Unknown ward", "UNKNOWN_WARD")
		return
	}

	items, err := h.repo.ListForWard(c.Request.Context(), ward)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch announcements", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, Resolve(items, time.Now()))
}

// ListAll godoc
// @Summary List announcements for every ward (admin)
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=[]Announcement}
// @Router /announcements/all [get]
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch announcements", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, Resolve(items, time.Now()))
}

// Create godoc
// @Summary Publish an announcement (admin)
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Announcement"
// @Success 201 {object} response.SuccessResponse{data=Announcement}
// @Failure 400 {object} response.ErrorResponse
// @Router /announcements [post]
func (h *Handler) Create(c *gin.Context) {
	authorID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}
	req.ApplyDefaults()

	target, ok := h.registry.CanonicalTarget(req.TargetWard)
	if !ok {
		response.BadRequest(c, "Unknown target ward", "UNKNOWN_WARD")
		return
	}

	a := &Announcement{
		AuthorID:   authorID,
		TitleEn:    req.TitleEn,
		TitleSw:    req.TitleSw,
		MessageEn:  req.MessageEn,
		MessageSw:  req.MessageSw,
		Category:   req.Category,
		Priority:   req.Priority,
		TargetWard: target,
		ExpiresAt:  req.ExpiresAt,
	}

	if err := h.repo.Create(c.Request.Context(), a); err != nil {
		response.ServiceUnavailable(c, "Failed to create announcement", "STORE_UNAVAILABLE")
		return
	}

	response.Created(c, a)
}

// Delete godoc
// @Summary Delete an announcement (admin)
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /announcements/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement ID format", "INVALID_ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Announcement not found", "ANNOUNCEMENT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to delete announcement", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, gin.H{"id": id.Hex()})
}
