package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Get(t *testing.T) {
	session := sessionFor(auth.RoleEmployee)
	session.ExpiresAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := NewSessionHandler(new(MockSessionRevoker), time.Hour)
	r := newTestRouter(session)
	r.GET("/session", h.Get)

	w := perform(r, http.MethodGet, "/session", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.SessionResponse{
		UserID:       session.UserID,
		Email:        session.Email,
		Role:         "employee",
		Capabilities: []string{"expenses:read_own", "files:read", "payroll:read_own", "products:read", "sessions:revoke"},
		ExpiresAt:    "2026-03-01T12:00:00Z",
	}, resp)
}

func TestSessionHandler_SignOut(t *testing.T) {
	tests := []struct {
		name  string
		query string
		all   bool
	}{
		{"this session", "", false},
		{"every session", "?all=true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := sessionFor(auth.RoleManager)
			revoker := new(MockSessionRevoker)
			revoker.On("SignOut", mock.Anything, session, tt.all, 12*time.Hour).Return(nil)
			h := NewSessionHandler(revoker, 12*time.Hour)
			r := newTestRouter(session)
			r.POST("/session/sign-out", h.SignOut)

			w := perform(r, http.MethodPost, "/session/sign-out"+tt.query, "")

			assert.Equal(t, http.StatusNoContent, w.Code)
			revoker.AssertExpectations(t)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		session := sessionFor(auth.RoleManager)
		revoker := new(MockSessionRevoker)
		revoker.On("SignOut", mock.Anything, session, false, time.Hour).Return(errors.New("redis: i/o timeout"))
		h := NewSessionHandler(revoker, time.Hour)
		r := newTestRouter(session)
		r.POST("/session/sign-out", h.SignOut)

		w := perform(r, http.MethodPost, "/session/sign-out", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "redis")
	})

	t.Run("without a session", func(t *testing.T) {
		revoker := new(MockSessionRevoker)
		h := NewSessionHandler(revoker, time.Hour)
		r := newTestRouter(nil)
		r.POST("/session/sign-out", h.SignOut)

		w := perform(r, http.MethodPost, "/session/sign-out", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		revoker.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
