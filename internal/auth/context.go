package auth

import "context"

type ctxKey string

const actorContextKey ctxKey = "todo.auth.actor"

// WithActorContext returns a context carrying the resolved actor identity
func WithActorContext(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorContextKey, actorID)
}

// ActorFromContext extracts the resolved actor identity, if any
func ActorFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(actorContextKey)
	actorID, ok := v.(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}
