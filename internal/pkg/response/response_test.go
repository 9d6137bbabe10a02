package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := testContext()

	Success(c, gin.H{"id": "abc"})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, "abc", body["data"].(map[string]interface{})["id"])
}

func TestCreated(t *testing.T) {
	c, w := testContext()

	Created(c, gin.H{"id": "abc"})

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestPaginated(t *testing.T) {
	c, w := testContext()

	Paginated(c, []string{"a", "b"}, 25, 1, 10, 3)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body["status"])
	require.Equal(t, float64(25), body["total"])
	require.Equal(t, float64(1), body["page"])
	require.Equal(t, float64(10), body["limit"])
	require.Equal(t, float64(3), body["totalPages"])
}

func TestErrorWithCode(t *testing.T) {
	c, w := testContext()

	NotFound(c, "Report not found", "REPORT_NOT_FOUND")

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Report not found", body["error"])
	require.Equal(t, "REPORT_NOT_FOUND", body["code"])
}

func TestErrorOmitsEmptyCode(t *testing.T) {
	c, w := testContext()

	BadRequest(c, "Invalid input")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Invalid input", body["error"])
	require.NotContains(t, body, "code")
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*gin.Context, string, ...string)
		code int
	}{
		{"unauthorized", Unauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden, http.StatusForbidden},
		{"conflict", Conflict, http.StatusConflict},
		{"validation", ValidationError, http.StatusUnprocessableEntity},
		{"internal", InternalServerError, http.StatusInternalServerError},
		{"unavailable", ServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()
			tt.fn(c, "boom")
			require.Equal(t, tt.code, w.Code)
		})
	}
}
