// Package auth resolves opaque bearer credentials to actor identities. Token
// issuance, signing and key distribution belong to an external identity
// provider; the core only ever sees the resolved actor ID.
package auth

import (
	"context"

	"todo-manager/internal/errors"
)

// Resolver maps a credential to a stable actor identifier. Implementations
// return an authentication-typed error for missing, unknown or expired
// credentials.
type Resolver interface {
	ResolveActor(ctx context.Context, credential string) (string, error)
}

// StaticResolver resolves credentials from a fixed token-to-actor table. It
// stands in for an external token verifier in development and tests.
type StaticResolver struct {
	tokens map[string]string
}

// NewStaticResolver creates a resolver over a token-to-actor map
func NewStaticResolver(tokens map[string]string) *StaticResolver {
	copied := make(map[string]string, len(tokens))
	for token, actor := range tokens {
		copied[token] = actor
	}
	return &StaticResolver{tokens: copied}
}

// ResolveActor returns the actor bound to the credential
func (r *StaticResolver) ResolveActor(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", errors.NewAuthenticationError("no authentication token found", nil)
	}
	actor, ok := r.tokens[credential]
	if !ok {
		return "", errors.NewAuthenticationError("invalid token", nil)
	}
	return actor, nil
}
