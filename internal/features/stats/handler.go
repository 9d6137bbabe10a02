package stats

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jirani-app/jirani-api/internal/features/contacts"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
)

// Handler handles dashboard statistics requests
type Handler struct {
	service      *Service
	contactsRepo *contacts.Repository
}

// NewHandler creates a new stats handler
func NewHandler(service *Service, contactsRepo *contacts.Repository) *Handler {
	return &Handler{service: service, contactsRepo: contactsRepo}
}

// Dashboard godoc
// @Summary Dashboard statistics (admin)
// @Description Windowed report counts (trailing 7 days vs the 7 before) and contact triage counts
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=Dashboard}
// @Router /stats/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	reportStats, err := h.service.WindowedReportStats(c.Request.Context(), time.Now())
	if err != nil {
		response.ServiceUnavailable(c, "Failed to compute report stats", "STORE_UNAVAILABLE")
		return
	}

	contactStats, err := h.contactsRepo.Stats(c.Request.Context())
	if err != nil {
		response.ServiceUnavailable(c, "Failed to compute contact stats", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, Dashboard{
		Reports:  *reportStats,
		Contacts: *contactStats,
	})
}
