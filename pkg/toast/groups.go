package toast

// DefaultStackLimit caps how many sooner notifications are rendered
// simultaneously. Entries beyond the cap stay in the active set and become
// visible as the window shifts when earlier entries are removed.
const DefaultStackLimit = 5

// OffsetStep is the per-rank visual offset, in pixels, applied to stacked
// sooner notifications sharing a position.
const OffsetStep = 12

// StackedNotification is a sooner notification placed within a position
// stack. Rank is the index within the capped, position-grouped subsequence;
// rank 0 sits at the base position and higher ranks are progressively
// offset.
type StackedNotification struct {
	Notification
	Rank int `json:"rank"`
}

// Offset returns the deterministic visual offset for the entry's rank.
func (s StackedNotification) Offset() int {
	return s.Rank * OffsetStep
}

// RenderState is the render-ready partition of the active notification set.
// Toasts and banners are independent, individually positioned items; sooner
// notifications are grouped into capped per-position stacks.
type RenderState struct {
	Toasts  []Notification                     `json:"toasts"`
	Banners []Notification                     `json:"banners"`
	Stacks  map[Position][]StackedNotification `json:"stacks"`
}

// RenderOption configures the grouping computation.
type RenderOption func(*renderConfig)

type renderConfig struct {
	stackLimit int
}

// WithStackLimit overrides the sooner stacking cap. Values < 1 are ignored.
func WithStackLimit(limit int) RenderOption {
	return func(c *renderConfig) {
		if limit > 0 {
			c.stackLimit = limit
		}
	}
}

// Render partitions the active set into render groups. It is a pure
// function of its input: it owns no state and is recomputed from the
// current snapshot on every call. Records are normalized here, so unknown
// variant, type, and position values degrade to the documented defaults
// without affecting the stored records.
func Render(active []Notification, opts ...RenderOption) RenderState {
	cfg := renderConfig{stackLimit: DefaultStackLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	state := RenderState{
		Toasts:  []Notification{},
		Banners: []Notification{},
		Stacks:  make(map[Position][]StackedNotification),
	}

	// Sooner entries beyond the cap are dropped from rendering only; the
	// window is taken oldest-first over the full insertion-ordered set.
	sooners := 0

	for _, raw := range active {
		n := raw.Normalized()
		switch n.Variant {
		case VariantSooner:
			if sooners >= cfg.stackLimit {
				continue
			}
			sooners++
			stack := state.Stacks[n.Position]
			state.Stacks[n.Position] = append(stack, StackedNotification{
				Notification: n,
				Rank:         len(stack),
			})
		case VariantBanner:
			state.Banners = append(state.Banners, n)
		default:
			state.Toasts = append(state.Toasts, n)
		}
	}

	return state
}
