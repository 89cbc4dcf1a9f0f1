package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lessonup/lessonup-api/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFrom(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		expected string
	}{
		{
			name:     "bearer header",
			header:   "Bearer abc123",
			expected: "abc123",
		},
		{
			name:     "cookie only",
			cookie:   "cookie-token",
			expected: "cookie-token",
		},
		{
			name:     "header wins over cookie",
			header:   "Bearer header-token",
			cookie:   "cookie-token",
			expected: "header-token",
		},
		{
			name:     "malformed header falls back to cookie",
			header:   "abc123",
			cookie:   "cookie-token",
			expected: "cookie-token",
		},
		{
			name:     "nothing",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: tt.cookie})
			}

			assert.Equal(t, tt.expected, middleware.TokenFrom(req))
		})
	}
}

func TestGetUserMissing(t *testing.T) {
	user, ok := middleware.GetUser(context.Background())
	require.False(t, ok)
	assert.Nil(t, user)
}
