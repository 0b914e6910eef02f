// Package toast manages the lifecycle of transient UI notifications: an
// in-memory active set, per-notification expiry timers, a scoped dispatcher
// API, and pure grouping logic that turns the active set into render-ready
// output.
//
// The package deliberately stops at lifecycle management. Rendering and
// styling are external collaborators that consume the snapshot feed; the
// package contributes no visual output of its own.
//
// # Architecture
//
//   - Store: insertion-ordered active set, mutated only via append/remove
//   - Scheduler: one-shot expiry timer per notification with a duration
//   - Dispatcher: the only mutation surface (Add/Remove), plus the feed
//   - Render: pure function from active set to grouped render state
//
// # Basic usage
//
//	d := toast.New()
//	defer d.Close()
//
//	n := d.Add("Saved",
//		toast.WithType(toast.TypeSuccess),
//		toast.WithDuration(3*time.Second),
//	)
//
//	// The notification expires on its own after 3s, or can be dismissed:
//	d.Remove(n.ID)
//
// # Scoped access
//
// A dispatcher is bound to a context scope so that arbitrary call sites can
// push notifications without threading the dispatcher explicitly:
//
//	ctx = toast.WithDispatcher(ctx, d)
//
//	if _, err := toast.Push(ctx, "Profile updated"); err != nil {
//		// toast.ErrScopeNotInitialized outside a provider scope
//	}
//
// # Render feed
//
// Collaborators subscribe to snapshots of the active set and recompute the
// grouped render state on every change:
//
//	sub := d.Subscribe(ctx)
//	for snap := range sub.Receive() {
//		state := toast.Render(snap.Active)
//		// hand state to the render layer
//	}
//
// # Variants
//
// Three variants are supported. Toasts render independently at their own
// position. Sooner notifications stack per position, capped at
// DefaultStackLimit simultaneously visible entries (oldest first); entries
// beyond the cap remain in the set and surface as the window shifts.
// Banners render full-width.
//
// # Expiry scheduling
//
// A timer armed at Add time is never cancelled: an explicit dismiss simply
// makes the later firing a no-op against the absent id. The leaked timer is
// harmless and keeps removal paths uniform (fire, then check membership).
//
// Unrecognized variant, type, and position values are stored as supplied
// and normalized to the documented defaults at render time only.
package toast
