package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantID   int64
		wantSeen bool
	}{
		{"valid id", "42", 42, true},
		{"no header", "", 0, false},
		{"garbage", "abc", 0, false},
		{"zero id rejected", "0", 0, false},
		{"negative id rejected", "-5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var seen bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, seen = GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}

			Identity(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantSeen, seen)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}
