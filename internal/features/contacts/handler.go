package contacts

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/pagination"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
	"github.com/jirani-app/jirani-api/internal/pkg/validator"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Handler handles contact-related HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates a new contact handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Send a message to the administrators
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Contact message"
// @Success 201 {object} response.SuccessResponse{data=Contact}
// @Failure 400 {object} response.ErrorResponse
// @Router /contacts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	if !validator.IsValidEmail(req.Email) {
		response.BadRequest(c, "Invalid email address", "INVALID_EMAIL")
		return
	}
	if req.Phone != "" && !validator.IsValidPhone(req.Phone) {
		response.BadRequest(c, "Invalid phone number", "INVALID_PHONE")
		return
	}

	contact := &Contact{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Ward:     req.Ward,
		Subject:  req.Subject,
		Message:  req.Message,
	}

	// The form works logged out; attach the author when a session exists.
	if userID := c.GetString(middleware.CtxUserID); userID != "" {
		if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
			contact.AuthorID = &oid
		}
	}

	if err := h.repo.Create(c.Request.Context(), contact); err != nil {
		response.ServiceUnavailable(c, "Failed to send message", "STORE_UNAVAILABLE")
		return
	}

	response.Created(c, contact)
}

// List godoc
// @Summary List contact messages (admin)
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param status query string false "new|read|replied"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Success 200 {object} response.PaginatedResponse{data=[]Contact}
// @Router /contacts [get]
func (h *Handler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != StatusNew && status != StatusRead && status != StatusReplied {
		response.BadRequest(c, "Invalid status filter", "INVALID_STATUS")
		return
	}

	page, limit := pagination.ParseQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.repo.List(c.Request.Context(), status, page, limit)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch messages", "STORE_UNAVAILABLE")
		return
	}
	if items == nil {
		items = []Contact{}
	}

	p := pagination.New(page, limit, total)
	response.Paginated(c, items, total, p.Page, p.Limit, p.Pages)
}

// Update godoc
// @Summary Triage a contact message (admin)
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body UpdateRequest true "Status and/or notes"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /contacts/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contact ID format", "INVALID_ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}
	if req.Status == nil && req.AdminNotes == nil {
		response.BadRequest(c, "Nothing to update", "EMPTY_UPDATE")
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Contact not found", "CONTACT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to update message", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, gin.H{"id": id.Hex()})
}
