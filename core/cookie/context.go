package cookie

import "context"

type keyContextKey struct{}

type namedKeyContextKey struct{ name string }

// WithKey stores the default jar key in the context.
func WithKey(ctx context.Context, key Key) context.Context {
	return context.WithValue(ctx, keyContextKey{}, key)
}

// KeyFromContext retrieves the default jar key from the context.
func KeyFromContext(ctx context.Context) (Key, bool) {
	key, ok := ctx.Value(keyContextKey{}).(Key)
	return key, ok
}

// WithNamedKey stores a jar key under a caller-chosen name, letting multiple
// independently keyed jars share one request context without colliding.
func WithNamedKey(ctx context.Context, name string, key Key) context.Context {
	return context.WithValue(ctx, namedKeyContextKey{name: name}, key)
}

// NamedKeyFromContext retrieves the jar key stored under name.
func NamedKeyFromContext(ctx context.Context, name string) (Key, bool) {
	key, ok := ctx.Value(namedKeyContextKey{name: name}).(Key)
	return key, ok
}
