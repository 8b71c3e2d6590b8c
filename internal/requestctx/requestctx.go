// Package requestctx carries per-request values (request id, acting user) through context.Context.
package requestctx

import "context"

type contextKey int

const (
	requestIDKey contextKey = iota
	actorKey
)

// SystemActor is recorded in audit fields when no authenticated user is attached to the context.
const SystemActor = "system"

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithActor returns a copy of ctx carrying the acting user's email.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey, email)
}

// Actor returns the acting user stored in ctx and whether one was set.
func Actor(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(actorKey).(string)
	return email, ok && email != ""
}

// ActorOrSystem returns the acting user, falling back to SystemActor.
func ActorOrSystem(ctx context.Context) string {
	if email, ok := Actor(ctx); ok {
		return email
	}
	return SystemActor
}
