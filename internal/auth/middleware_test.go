package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAPI(t *testing.T) {
	resolver := NewStaticResolver(map[string]string{"token-a": "alice"})

	var seenActor string
	handler := RequireAPI(resolver, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		seenActor = actor
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantActor  string
	}{
		{name: "should pass a valid bearer token", authHeader: "Bearer token-a", wantStatus: http.StatusOK, wantActor: "alice"},
		{name: "should accept a lowercase scheme", authHeader: "bearer token-a", wantStatus: http.StatusOK, wantActor: "alice"},
		{name: "should reject a missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "should reject an unknown token", authHeader: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "should reject a non-bearer scheme", authHeader: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "should reject a bare token without a scheme", authHeader: "token-a", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenActor = ""
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantActor, seenActor)
			} else {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}
