package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValidationErrors(t *testing.T) {
	require.NoError(t, SetupValidator())

	type body struct {
		Amount string `json:"amount" binding:"required"`
		Reason string `json:"reason" binding:"required,max=5"`
	}

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req body
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
	router.GET("/files", func(c *gin.Context) {
		var q dto.FileQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	send := func(req *http.Request) (int, dto.ErrorResponse) {
		req.Header.Set("X-Request-ID", "req-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		var resp dto.ErrorResponse
		if w.Code != http.StatusNoContent {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		}
		return w.Code, resp
	}

	t.Run("field errors use wire names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"reason":"far too long"}`))
		req.Header.Set("Content-Type", "application/json")
		code, resp := send(req)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrCodeValidation, resp.Code)
		assert.Equal(t, "req-1", resp.RequestID)
		assert.ElementsMatch(t, []dto.ValidationDetail{
			{Field: "amount", Message: "This field is required"},
			{Field: "reason", Message: "Must be at most 5 characters"},
		}, resp.Details)
	})

	t.Run("malformed json has no details", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"amount":`))
		req.Header.Set("Content-Type", "application/json")
		code, resp := send(req)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Code)
		assert.Empty(t, resp.Details)
	})

	t.Run("storage key tag", func(t *testing.T) {
		code, resp := send(httptest.NewRequest(http.MethodGet, "/files?key=../secret", nil))
		assert.Equal(t, http.StatusBadRequest, code)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, dto.ValidationDetail{Field: "key", Message: "Invalid storage key"}, resp.Details[0])

		code, _ = send(httptest.NewRequest(http.MethodGet, "/files?key=receipts/r-1.pdf", nil))
		assert.Equal(t, http.StatusNoContent, code)
	})
}
