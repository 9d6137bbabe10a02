package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/features/wards"
	"github.com/jirani-app/jirani-api/internal/middleware"
	"github.com/jirani-app/jirani-api/internal/pkg/jwt"
	"github.com/jirani-app/jirani-api/internal/pkg/pagination"
	"github.com/jirani-app/jirani-api/internal/pkg/response"
	"github.com/jirani-app/jirani-api/internal/pkg/validator"
	apperrors "github.com/jirani-app/jirani-api/pkg/errors"
)

// Handler handles auth-related HTTP requests
type Handler struct {
	repo     *Repository
	registry *wards.Registry
	jwtCfg   *jwt.Config
}

// NewHandler creates a new auth handler
func NewHandler(repo *Repository, registry *wards.Registry, cfg *config.Config) *Handler {
	return &Handler{
		repo:     repo,
		registry: registry,
		jwtCfg:   jwt.DefaultConfig(cfg.JWTSecret),
	}
}

// Register godoc
// @Summary Register a resident account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	if !validator.IsValidEmail(req.Email) {
		response.BadRequest(c, "Invalid email address", "INVALID_EMAIL")
		return
	}
	ward, ok := h.registry.Canonical(req.Ward)
	if !ok {
		response.BadRequest(c, "Unknown ward", "UNKNOWN_WARD")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to create account", "HASH_FAILED")
		return
	}

	user := &User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         RoleResident,
		Ward:         ward,
		Status:       StatusPending,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Email or username already registered", "DUPLICATE_ACCOUNT")
			return
		}
		response.ServiceUnavailable(c, "Failed to create account", "STORE_UNAVAILABLE")
		return
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role, user.Ward, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_FAILED")
		return
	}

	response.Created(c, AuthResponse{User: user, AccessToken: token})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
			return
		}
		response.ServiceUnavailable(c, "Login failed", "STORE_UNAVAILABLE")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	// Suspended accounts still get a session. The status travels in the
	// response so the client can show the suspension notice.
	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Role, user.Ward, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue token", "TOKEN_FAILED")
		return
	}

	response.Success(c, AuthResponse{User: user, AccessToken: token})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=User}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.CtxUserID))
	if err != nil {
		response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
		return
	}

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found", "USER_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to load user", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, user)
}

// ListUsers godoc
// @Summary List accounts (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Success 200 {object} response.PaginatedResponse{data=[]User}
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := pagination.ParseQuery(c.Query("page"), c.Query("limit"))

	users, total, err := h.repo.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		response.ServiceUnavailable(c, "Failed to fetch users", "STORE_UNAVAILABLE")
		return
	}
	if users == nil {
		users = []User{}
	}

	p := pagination.New(page, limit, total)
	response.Paginated(c, users, total, p.Page, p.Limit, p.Pages)
}

// UpdateUserStatus godoc
// @Summary Verify or suspend an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/status [patch]
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID format", "INVALID_ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	if err := h.repo.UpdateStatus(c.Request.Context(), userID, req.Status); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found", "USER_NOT_FOUND")
			return
		}
		response.ServiceUnavailable(c, "Failed to update status", "STORE_UNAVAILABLE")
		return
	}

	response.Success(c, gin.H{"id": userID.Hex(), "status": req.Status})
}
