package toast

import (
	"context"
)

// dispatcherKey is the context key binding a Dispatcher to a scope.
// An unexported struct key cannot collide with keys from other packages.
type dispatcherKey struct{}

// WithDispatcher binds d to the context, establishing the scope within
// which Push and Dismiss operate. One dispatcher per scope: nesting
// WithDispatcher replaces the outer binding for the inner scope.
func WithDispatcher(ctx context.Context, d *Dispatcher) context.Context {
	return context.WithValue(ctx, dispatcherKey{}, d)
}

// FromContext returns the dispatcher bound to the context scope.
// It returns ErrScopeNotInitialized when no enclosing scope exists; the
// error surfaces at call time so misuse is never silently ignored.
func FromContext(ctx context.Context) (*Dispatcher, error) {
	d, ok := ctx.Value(dispatcherKey{}).(*Dispatcher)
	if !ok || d == nil {
		return nil, ErrScopeNotInitialized
	}
	return d, nil
}

// Push adds a notification through the dispatcher bound to the context
// scope. It fails with ErrScopeNotInitialized outside an initialized scope.
func Push(ctx context.Context, message string, opts ...Option) (Notification, error) {
	d, err := FromContext(ctx)
	if err != nil {
		return Notification{}, err
	}
	return d.Add(message, opts...), nil
}

// Dismiss removes a notification through the dispatcher bound to the
// context scope. Dismissing an unknown id is a no-op; calling outside an
// initialized scope fails with ErrScopeNotInitialized.
func Dismiss(ctx context.Context, id string) error {
	d, err := FromContext(ctx)
	if err != nil {
		return err
	}
	d.Remove(id)
	return nil
}
