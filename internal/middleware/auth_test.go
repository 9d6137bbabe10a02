package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jirani-app/jirani-api/internal/config"
	"github.com/jirani-app/jirani-api/internal/pkg/jwt"
)

func authTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *jwt.Claims) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &jwt.Claims{}
	router := gin.New()
	router.GET("/protected", Auth(cfg), func(c *gin.Context) {
		captured.UserID = c.GetString(CtxUserID)
		captured.Role = c.GetString(CtxRole)
		captured.Ward = c.GetString(CtxWard)
		c.Status(http.StatusOK)
	})
	router.GET("/admin", Auth(cfg), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, captured
}

func TestAuthMissingHeader(t *testing.T) {
	router, _ := authTestRouter(t, &config.Config{JWTSecret: "s3cret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router, _ := authTestRouter(t, &config.Config{JWTSecret: "s3cret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthValidTokenSetsClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	router, captured := authTestRouter(t, cfg)

	token, err := jwt.GenerateToken("user-1", "asha@example.com", "resident", "kati", jwt.DefaultConfig(cfg.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-1", captured.UserID)
	require.Equal(t, "resident", captured.Role)
	require.Equal(t, "kati", captured.Ward)
}

func TestAuthAcceptsRawTokenHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	router, _ := authTestRouter(t, cfg)

	token, err := jwt.GenerateToken("user-1", "asha@example.com", "resident", "kati", jwt.DefaultConfig(cfg.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsResident(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	router, _ := authTestRouter(t, cfg)

	token, err := jwt.GenerateToken("user-1", "asha@example.com", "resident", "kati", jwt.DefaultConfig(cfg.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	router, _ := authTestRouter(t, cfg)

	token, err := jwt.GenerateToken("admin-1", "mods@example.com", RoleAdmin, "", jwt.DefaultConfig(cfg.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}

	router := gin.New()
	router.GET("/open", OptionalAuth(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserID))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}
