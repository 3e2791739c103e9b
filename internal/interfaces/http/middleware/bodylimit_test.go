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

// adjustmentRouter mounts a balance-adjustment style endpoint behind BodyLimit
func adjustmentRouter(limit int64) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), BodyLimit(limit))
	r.POST("/customers/:id/balance-adjustments", func(c *gin.Context) {
		var req dto.AdjustBalanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reason": req.Reason})
	})
	r.GET("/customers", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	return r
}

func TestBodyLimit(t *testing.T) {
	const limit = 64
	small := `{"amount":"-0.1234","reason":"refund"}`
	large := `{"amount":"1","reason":"` + strings.Repeat("x", 200) + `"}`

	tests := []struct {
		name          string
		method        string
		path          string
		body          string
		contentLength int64
		limit         int64
		wantStatus    int
		wantCode      string
	}{
		{"within limit", http.MethodPost, "/customers/1/balance-adjustments", small, int64(len(small)), limit, http.StatusOK, ""},
		{"declared length over limit", http.MethodPost, "/customers/1/balance-adjustments", large, int64(len(large)), limit, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooLarge},
		{"chunked body over limit", http.MethodPost, "/customers/1/balance-adjustments", large, -1, limit, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooLarge},
		{"get without body", http.MethodGet, "/customers", "", 0, limit, http.StatusOK, ""},
		{"zero disables the cap", http.MethodPost, "/customers/1/balance-adjustments", large, int64(len(large)), 0, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			} else {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
				req.ContentLength = tt.contentLength
			}
			w := httptest.NewRecorder()
			adjustmentRouter(tt.limit).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode == "" {
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}
