package toast

import "errors"

var (
	// ErrScopeNotInitialized is returned when the dispatcher is consumed
	// outside an initialized scope. It surfaces synchronously at call time
	// and must not be swallowed.
	ErrScopeNotInitialized = errors.New("toast: dispatcher scope not initialized")
)
