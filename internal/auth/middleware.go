package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireAPI wraps an HTTP handler with bearer-token actor resolution. The
// credential is taken from the Authorization header; resolution failure ends
// the request with 401 and a JSON error body.
func RequireAPI(resolver Resolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential := bearerToken(r)

		actorID, err := resolver.ResolveActor(r.Context(), credential)
		if err != nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "unauthorized"})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActorContext(r.Context(), actorID)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
