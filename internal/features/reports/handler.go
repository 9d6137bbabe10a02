package reports

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/logger"
	"github.com/jirani-app/jirani-api/internal/pkg/pagination"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Handler handles report-related HTTP requests
type Handler struct {
	repo     *Repository
	registry *wards.Registry
}

// NewHandler creates a new report handler
func NewHandler(repo *Repository, registry *wards.Registry) *Handler {
	return &Handler{repo: repo, registry: registry}
}

// Create godoc
// @Summary Submit a new report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report"
// @Success 201 {object} response.SuccessResponse{data=Report}
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	authorID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	ward, ok := h.registry.Canonical(req.Ward)
	if !ok {
		response.BadRequest(c, "Unknown ward", "UNKNOWN_WARD")
		return
	}

	report := &Report{
		AuthorID:        authorID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Ward:            ward,
		LocationDetails: req.LocationDetails,
		ImagePath:       req.ImagePath,
	}

	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		response.ServiceUnavailable(c, "Failed to create report", "STORE_UNAVAILABLE")
		return
	}

	response.Created(c, report)
}

// List godoc
// @Summary List reports
// @Description Filter by category, status, ward and free-text search; sorted by vote count descending
// @Tags reports
// @Produce json
// @Param category query string false "security|environment|health|other"
// @Param status query string false "pending|in_progress|resolved"
// @Param ward query string false "Ward"
// @Param search query string false "Substring match against title or description"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Success 200 {object} response.PaginatedResponse{data=[]Report}
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_QUERY")
		return
	}

	items, total, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch reports", "STORE_UNAVAILABLE")
		return
	}
	if items == nil {
		items = []Report{}
	}

	p := pagination.New(q.Page, q.Limit, total)
	response.Paginated(c, items, total, p.Page, p.Limit, p.Pages)
}

// ListMine godoc
// @Summary List the authenticated resident's reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Success 200 {object} response.PaginatedResponse{data=[]Report}
// @Router /reports/mine [get]
func (h *Handler) ListMine(c *gin.Context) {
	authorID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
		return
	}

	page, limit := pagination.ParseQuery(c.Query("page"), c.Query("limit"))

	items, total, err := h.repo.ListByAuthor(c.Request.Context(), authorID, page, limit)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch reports", "STORE_UNAVAILABLE")
		return
	}
	if items == nil {
		items = []Report{}
	}

	p := pagination.New(page, limit, total)
	response.Paginated(c, items, total, p.Page, p.Limit, p.Pages)
}

// Get godoc
// @Summary Get a single report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID format", "INVALID_ID")
		return
	}

	report, err := h.repo.GetByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to fetch report", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, report)
}

// UpdateStatus godoc
// @Summary Move a report through its lifecycle (admin)
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID format", "INVALID_ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	previous, err := h.repo.UpdateStatus(c.Request.Context(), reportID, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to update status", "STORE_UNAVAILABLE")
		return
	}

	// Transitions are unrestricted but always audited.
	logger.Info("report %s status %s -> %s by %s",
		reportID.Hex(), previous.Status, req.Status, c.GetString(middleware.CtxUserID))

	response.Success(c, gin.H{"id": reportID.Hex(), "status": req.Status})
}

// UpdateUrgent godoc
// @Summary Flag or unflag a report as urgent (admin)
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateUrgentRequest true "Urgent flag"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id}/urgent [patch]
func (h *Handler) UpdateUrgent(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID format", "INVALID_ID")
		return
	}

	var req UpdateUrgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	if err := h.repo.SetUrgent(c.Request.Context(), reportID, *req.IsUrgent); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to update urgent flag", "STORE_UNAVAILABLE")
		return
	}

	logger.Info("report %s urgent=%t by %s",
		reportID.Hex(), *req.IsUrgent, c.GetString(middleware.CtxUserID))

	response.Success(c, gin.H{"id": reportID.Hex(), "isUrgent": *req.IsUrgent})
}

// Delete godoc
// @Summary Delete a report (admin)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID format", "INVALID_ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), reportID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to delete report", "STORE_UNAVAILABLE")
		return
	}

	logger.Info("report %s deleted by %s", reportID.Hex(), c.GetString(middleware.CtxUserID))

	response.Success(c, gin.H{"id": reportID.Hex()})
}
